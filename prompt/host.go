package prompt

import (
	"context"
	"io"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/coschain/cos-wallet/common/constants"
	"github.com/coschain/cos-wallet/node"
	"github.com/coschain/cos-wallet/unlock"
	"github.com/sirupsen/logrus"
)

// Host shows a terminal prompt for every session the coordinator opens.
type Host struct {
	coord    *unlock.Coordinator
	backend  Unlocker
	reader   PasswordReader
	out      io.Writer
	attempts int
	log      *logrus.Logger

	bus     EventBus.Bus
	handler func(unlock.Session)
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewHost(coord *unlock.Coordinator, backend Unlocker, reader PasswordReader, out io.Writer, attempts int, log *logrus.Logger) *Host {
	h := &Host{
		coord:    coord,
		backend:  backend,
		reader:   reader,
		out:      out,
		attempts: attempts,
		log:      log,
	}
	h.handler = h.show
	return h
}

func (h *Host) Coordinator() *unlock.Coordinator {
	return h.coord
}

// Attach starts listening for opened sessions on bus.
func (h *Host) Attach(bus EventBus.Bus) error {
	h.ctx, h.cancel = context.WithCancel(context.Background())
	h.bus = bus
	return bus.Subscribe(constants.NoticeUnlockPrompt, h.handler)
}

// Detach stops listening and waits for running prompts.
func (h *Host) Detach() error {
	if h.bus == nil {
		return nil
	}
	err := h.bus.Unsubscribe(constants.NoticeUnlockPrompt, h.handler)
	h.cancel()
	h.wg.Wait()
	h.bus = nil
	return err
}

func (h *Host) Start(n *node.Node) error {
	return h.Attach(n.EvBus)
}

func (h *Host) Stop() error {
	return h.Detach()
}

// Wait blocks until no prompt is running.
func (h *Host) Wait() {
	h.wg.Wait()
}

func (h *Host) show(s unlock.Session) {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.run(s)
	}()
}

func (h *Host) run(s unlock.Session) {
	p, err := Open(h.coord, h.backend,
		func() { h.log.Infof("account %s unlocked", s.AccountID) },
		func() { h.log.Debugf("unlock prompt for %s dismissed", s.AccountID) })
	if err != nil {
		h.log.Debugf("session #%d is gone: %v", s.Generation, err)
		return
	}
	if p.Session() != s {
		return
	}
	if err := p.Run(h.ctx, h.reader, h.out, h.attempts); err != nil {
		h.log.Debugf("unlock prompt for %s: %v", s.AccountID, err)
	}
}
