package unlock

import (
	"context"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/coschain/cos-wallet/common/constants"
	"github.com/sirupsen/logrus"
)

type State int

const (
	Idle State = iota
	PromptOpen
)

func (s State) String() string {
	if s == PromptOpen {
		return "PromptOpen"
	}
	return "Idle"
}

// Session identifies one opening of the prompt. Generation grows with every
// opening, so a prompt can tell whether the session it was bound to still
// exists.
type Session struct {
	AccountID  string
	Generation uint64
}

// Locker is the part of the credential backend the coordinator needs.
type Locker interface {
	LockAccountSourceOrAccount(ctx context.Context, id string) error
}

// Coordinator is the single-flight gate of unlock prompts: at most one
// prompt is open, bound to one account. It is owned by the composition root.
type Coordinator struct {
	locker  Locker
	noticer EventBus.Bus
	log     *logrus.Logger

	mu         sync.Mutex
	target     string
	generation uint64
	pending    *Pending
}

func NewCoordinator(locker Locker, noticer EventBus.Bus, log *logrus.Logger) *Coordinator {
	return &Coordinator{locker: locker, noticer: noticer, log: log}
}

// RequestUnlock opens the prompt for id. A request for the account already
// being unlocked shares the open request; a request for any other account
// while the prompt is open is dropped and its handle fails with ErrPromptBusy.
func (c *Coordinator) RequestUnlock(id string) *Pending {
	if id == "" {
		return completedPending(id, ErrNoAccountID)
	}
	c.mu.Lock()
	if c.target != "" {
		current, p := c.target, c.pending
		c.mu.Unlock()
		if current == id {
			return p
		}
		c.log.Debugf("unlock of %s dropped, prompt is open for %s", id, current)
		return completedPending(id, ErrPromptBusy)
	}
	c.generation++
	c.target = id
	c.pending = newPending(id)
	session := Session{AccountID: id, Generation: c.generation}
	p := c.pending
	c.mu.Unlock()

	c.log.Debugf("unlock prompt opened for %s (#%d)", id, session.Generation)
	c.publish(constants.NoticeUnlockPrompt, session)
	return p
}

// Cancel closes the prompt whatever session it shows. It is a no-op when no
// prompt is open.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.finish(ErrUnlockCancelled)
}

// CancelSession closes the prompt only if it still shows session gen.
func (c *Coordinator) CancelSession(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.target == "" || c.generation != gen {
		return false
	}
	c.finish(ErrUnlockCancelled)
	return true
}

// Resolve closes the prompt of session gen after a successful unlock and
// completes the pending request. A stale gen is discarded.
func (c *Coordinator) Resolve(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.target == "" || c.generation != gen {
		c.log.Debugf("stale unlock of session #%d discarded", gen)
		return false
	}
	c.finish(nil)
	return true
}

func (c *Coordinator) finish(err error) {
	if c.target == "" {
		return
	}
	c.log.Debugf("unlock prompt for %s closed (#%d): %v", c.target, c.generation, err)
	c.pending.complete(err)
	c.target = ""
	c.pending = nil
}

// LockAccount locks id and reports the outcome as a toast. It never fails
// and leaves the prompt state alone.
func (c *Coordinator) LockAccount(ctx context.Context, id string) {
	toast := Toast{Kind: ToastSuccess, Message: constants.LockedNotice}
	if err := c.locker.LockAccountSourceOrAccount(ctx, id); err != nil {
		c.log.Warnf("lock %s: %v", id, err)
		toast = Toast{Kind: ToastError, Message: err.Error()}
		if toast.Message == "" {
			toast.Message = constants.LockFailedNotice
		}
	}
	c.publish(constants.NoticeToast, toast)
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.target == "" {
		return Idle
	}
	return PromptOpen
}

// Session returns the open session, if any.
func (c *Coordinator) Session() (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.target == "" {
		return Session{}, false
	}
	return Session{AccountID: c.target, Generation: c.generation}, true
}

func (c *Coordinator) IsUnlockModalOpen() bool {
	return c.State() == PromptOpen
}

// AccountIDToUnlock returns the account the prompt is bound to, "" when idle.
func (c *Coordinator) AccountIDToUnlock() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *Coordinator) UnlockAccount(id string) {
	c.RequestUnlock(id)
}

func (c *Coordinator) HideUnlockModal() {
	c.Cancel()
}

func (c *Coordinator) publish(topic string, arg interface{}) {
	if c.noticer != nil {
		c.noticer.Publish(topic, arg)
	}
}
