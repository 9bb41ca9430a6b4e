package prompt

import (
	"golang.org/x/crypto/ssh/terminal"
)

type PasswordReader interface {
	ReadPassword(fd int) ([]byte, error)
}

// TerminalReader reads without echo from a terminal.
type TerminalReader struct{}

func (TerminalReader) ReadPassword(fd int) ([]byte, error) {
	return terminal.ReadPassword(fd)
}
