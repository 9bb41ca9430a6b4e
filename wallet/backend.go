package wallet

import "context"

// Backend is the credential store the unlock flow talks to. Every call may
// block on key derivation or storage and may fail; a wrong password is
// reported as ErrWrongPassword.
type Backend interface {
	UnlockAccountSourceOrAccount(ctx context.Context, id, password string) error

	LockAccountSourceOrAccount(ctx context.Context, id string) error

	// CreateMnemonicAccountSource seals entropy (256 fresh bits when nil) with
	// password and returns the id of the new source.
	CreateMnemonicAccountSource(ctx context.Context, password string, entropy []byte) (string, error)

	CreateAccounts(ctx context.Context, typ AccountType, sourceID string) ([]*Account, error)
}
