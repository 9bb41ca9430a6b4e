package prompt

import "errors"

var (
	ErrNoSession      = errors.New("no unlock prompt is open")
	ErrSubmitInFlight = errors.New("a password is being checked")
	// ErrStaleSession reports a result that arrived after the prompt was
	// dismissed. It has been discarded.
	ErrStaleSession = errors.New("unlock prompt was dismissed")
	ErrPromptClosed = errors.New("unlock prompt is closed")
)
