package node

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/coschain/cos-wallet/common/eventloop"
	"github.com/sirupsen/logrus"
)

// Node is the composition root of the wallet: it owns the configuration, the
// UI event loop, the notice bus and the registered services.
type Node struct {
	config *Config

	MainLoop *eventloop.EventLoop
	EvBus    EventBus.Bus

	serviceNames []string
	services     map[string]Service
	serviceFuncs []NamedServiceConstructor // registered services store into this slice

	lock sync.RWMutex

	Log *logrus.Logger
}

type NamedServiceConstructor struct {
	name        string
	constructor ServiceConstructor
}

func New(conf *Config, log *logrus.Logger) (*Node, error) {
	// Copy config
	confCopy := *conf
	conf = &confCopy
	if conf.DataDir != "" {
		dir, err := filepath.Abs(conf.DataDir)
		if err != nil {
			return nil, err
		}
		conf.DataDir = dir
	}
	// Ensure that the instance name doesn't cause weird conflicts with
	// other files in the data directory.
	if strings.ContainsAny(conf.Name, `/\`) {
		return nil, errors.New(`Config.Name must not contain '/' or '\'`)
	}
	if log == nil {
		log = logrus.New()
	}

	return &Node{
		config:       conf,
		MainLoop:     eventloop.NewEventLoop(),
		EvBus:        EventBus.New(),
		serviceNames: []string{},
		serviceFuncs: []NamedServiceConstructor{},
		Log:          log,
	}, nil
}

func (n *Node) Config() *Config {
	return n.config
}

// Register adds a service constructor; names must be unique.
func (n *Node) Register(name string, constructor ServiceConstructor) error {
	n.lock.Lock()
	defer n.lock.Unlock()

	for _, f := range n.serviceFuncs {
		if f.name == name {
			return &DuplicateServiceError{Kind: name}
		}
	}
	n.serviceFuncs = append(n.serviceFuncs, NamedServiceConstructor{name: name, constructor: constructor})
	return nil
}

// Start constructs every registered service in registration order and starts
// them. If one fails to start, the ones already started are stopped again.
func (n *Node) Start() error {
	n.lock.Lock()
	defer n.lock.Unlock()

	n.services, n.serviceNames = nil, nil

	if err := n.openDataDir(); err != nil {
		return err
	}

	serviceNames := make([]string, 0, len(n.serviceFuncs))
	services := make(map[string]Service)

	for _, namedConstructor := range n.serviceFuncs {
		ctx := &ServiceContext{
			config: n.config,
			// to support services to share, the list of services pass by reference
			services: services,
			noticer:  n.EvBus,
			log:      n.Log,
		}

		name := namedConstructor.name
		if _, exists := services[name]; exists {
			return &DuplicateServiceError{Kind: name}
		}
		service, err := namedConstructor.constructor(ctx)
		if err != nil {
			return err
		}
		services[name] = service
		serviceNames = append(serviceNames, name)
	}

	var started []string
	for _, kind := range serviceNames {
		if err := services[kind].Start(n); err != nil {
			for i := len(started) - 1; i >= 0; i-- {
				_ = services[started[i]].Stop()
			}
			return err
		}
		n.Log.Debugf("service %s started", kind)
		started = append(started, kind)
	}

	n.services, n.serviceNames = services, serviceNames
	return nil
}

func (n *Node) openDataDir() error {
	if n.config.DataDir == "" {
		return nil
	}
	return os.MkdirAll(n.config.InstanceDir(), 0700)
}

// Stop stops the services in reverse start order and the event loop.
func (n *Node) Stop() error {
	n.lock.Lock()
	defer n.lock.Unlock()

	failure := &StopError{
		Services: make(map[string]error),
	}

	length := len(n.serviceNames)
	for i := range n.serviceNames {
		kind := n.serviceNames[length-1-i]
		if err := n.services[kind].Stop(); err != nil {
			failure.Services[kind] = err
		}
	}
	n.services, n.serviceNames = nil, nil
	n.MainLoop.Stop()

	if len(failure.Services) > 0 {
		return failure
	}
	return nil
}

// Wait runs the UI event loop until Stop is called.
func (n *Node) Wait() {
	n.MainLoop.Run()
}

func (n *Node) Service(serviceName string) (interface{}, error) {
	n.lock.RLock()
	defer n.lock.RUnlock()

	if running, ok := n.services[serviceName]; ok {
		return running, nil
	}
	return nil, &UnknownServiceError{Name: serviceName}
}
