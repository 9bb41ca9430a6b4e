package unlock

import "errors"

var (
	// ErrPromptBusy completes a request dropped because a prompt for another
	// account is open.
	ErrPromptBusy = errors.New("another account is being unlocked")
	// ErrUnlockCancelled completes a request whose prompt was dismissed.
	ErrUnlockCancelled = errors.New("unlock cancelled")
	ErrNoAccountID     = errors.New("no account to unlock")
)
