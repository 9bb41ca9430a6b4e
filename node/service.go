package node

import (
	"github.com/asaskevich/EventBus"
	"github.com/sirupsen/logrus"
)

type ServiceContext struct {
	config   *Config
	services map[string]Service
	noticer  EventBus.Bus
	log      *logrus.Logger
}

func (ctx *ServiceContext) Config() *Config {
	return ctx.config
}

func (ctx *ServiceContext) ResolvePath(path string) string {
	return ctx.config.ResolvePath(path)
}

func (ctx *ServiceContext) Noticer() EventBus.Bus {
	return ctx.noticer
}

func (ctx *ServiceContext) Log() *logrus.Logger {
	return ctx.log
}

// Service returns a service constructed before the caller.
func (ctx *ServiceContext) Service(name string) (interface{}, error) {
	if running, ok := ctx.services[name]; ok {
		return running, nil
	}
	return nil, &UnknownServiceError{Name: name}
}

type ServiceConstructor func(ctx *ServiceContext) (Service, error)

type Service interface {
	Start(node *Node) error

	// stop all goroutines belonging to the service,
	// blocking until all of them are terminated.
	Stop() error
}
