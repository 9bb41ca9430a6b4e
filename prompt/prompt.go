package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"syscall"

	"github.com/coschain/cos-wallet/unlock"
)

// Unlocker checks a secret against the account store.
type Unlocker interface {
	UnlockAccountSourceOrAccount(ctx context.Context, id, password string) error
}

// Prompt collects the password for the session that was open when it was
// created. onSuccess or onClose is called once, when the prompt finishes.
type Prompt struct {
	coord   *unlock.Coordinator
	backend Unlocker
	session unlock.Session

	onSuccess func()
	onClose   func()

	mu         sync.Mutex
	submitting bool
	finished   bool
	err        error
}

func Open(coord *unlock.Coordinator, backend Unlocker, onSuccess, onClose func()) (*Prompt, error) {
	session, ok := coord.Session()
	if !ok {
		return nil, ErrNoSession
	}
	if onSuccess == nil {
		onSuccess = func() {}
	}
	if onClose == nil {
		onClose = func() {}
	}
	return &Prompt{
		coord:     coord,
		backend:   backend,
		session:   session,
		onSuccess: onSuccess,
		onClose:   onClose,
	}, nil
}

func (p *Prompt) Session() unlock.Session {
	return p.session
}

func (p *Prompt) AccountID() string {
	return p.session.AccountID
}

// Err returns the error of the last failed attempt, shown inline.
func (p *Prompt) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *Prompt) Finished() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.finished
}

// Submit tries secret. On failure the prompt stays open and the error is
// kept for display. On success the session is resolved and onSuccess runs.
// A prompt whose session was dismissed elsewhere finishes with onClose and
// never reaches the backend.
func (p *Prompt) Submit(ctx context.Context, secret string) error {
	p.mu.Lock()
	if p.finished {
		p.mu.Unlock()
		return ErrPromptClosed
	}
	if p.submitting {
		p.mu.Unlock()
		return ErrSubmitInFlight
	}
	if !p.current() {
		p.finished = true
		p.mu.Unlock()
		p.onClose()
		return ErrStaleSession
	}
	p.submitting = true
	p.mu.Unlock()

	err := p.backend.UnlockAccountSourceOrAccount(ctx, p.session.AccountID, secret)

	p.mu.Lock()
	p.submitting = false
	if p.finished {
		p.mu.Unlock()
		p.relock(ctx, err)
		return ErrStaleSession
	}
	if err != nil {
		p.err = err
		p.mu.Unlock()
		return err
	}
	p.finished = true
	p.err = nil
	if !p.coord.Resolve(p.session.Generation) {
		// dismissed elsewhere while the backend was busy
		p.mu.Unlock()
		p.relock(ctx, nil)
		p.onClose()
		return ErrStaleSession
	}
	p.mu.Unlock()

	p.onSuccess()
	return nil
}

// Dismissed reports whether the session of p is no longer the open one.
func (p *Prompt) Dismissed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.finished || !p.current()
}

func (p *Prompt) current() bool {
	s, ok := p.coord.Session()
	return ok && s == p.session
}

// relock undoes an unlock that landed after the prompt was dismissed.
func (p *Prompt) relock(ctx context.Context, unlockErr error) {
	if unlockErr != nil {
		return
	}
	if l, ok := p.backend.(unlock.Locker); ok {
		_ = l.LockAccountSourceOrAccount(ctx, p.session.AccountID)
	}
}

// Close dismisses the prompt. Closing a finished prompt does nothing.
func (p *Prompt) Close() {
	p.mu.Lock()
	if p.finished {
		p.mu.Unlock()
		return
	}
	p.finished = true
	p.mu.Unlock()

	p.coord.CancelSession(p.session.Generation)
	p.onClose()
}

// Run asks for the password on out until the account is unlocked. The
// prompt is closed after maxAttempts failures (0 means no limit), on a read
// error, when ctx is done or once its session was dismissed elsewhere.
func (p *Prompt) Run(ctx context.Context, reader PasswordReader, out io.Writer, maxAttempts int) error {
	for attempts := 0; ; {
		if err := ctx.Err(); err != nil {
			p.Close()
			return err
		}
		if p.Dismissed() {
			p.Close()
			return ErrStaleSession
		}
		fmt.Fprintf(out, "Enter passphrase for %s > ", p.session.AccountID)
		secret, err := reader.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(out)
		if err != nil {
			p.Close()
			return err
		}

		err = p.Submit(ctx, strings.TrimRight(string(secret), "\r\n"))
		switch err {
		case nil:
			fmt.Fprintf(out, "unlock account %s success\n", p.session.AccountID)
			return nil
		case ErrStaleSession, ErrPromptClosed:
			return err
		}
		fmt.Fprintf(out, "error: %v\n", err)
		attempts++
		if maxAttempts > 0 && attempts >= maxAttempts {
			p.Close()
			return err
		}
	}
}
