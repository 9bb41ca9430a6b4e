package unlock

import (
	"context"
	"sync"
)

// Pending is the caller's handle on one unlock request. It completes once,
// with nil when the account was unlocked through the prompt.
type Pending struct {
	id   string
	done chan struct{}
	once sync.Once
	err  error
}

func newPending(id string) *Pending {
	return &Pending{id: id, done: make(chan struct{})}
}

func completedPending(id string, err error) *Pending {
	p := newPending(id)
	p.complete(err)
	return p
}

func (p *Pending) complete(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

func (p *Pending) AccountID() string {
	return p.id
}

func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Err returns the outcome, nil while the request is still pending.
func (p *Pending) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

// Wait blocks until the request completes or ctx is done. Giving up on ctx
// leaves the prompt open.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
