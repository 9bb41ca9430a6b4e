package accountui

import (
	"context"
	"errors"
	"fmt"

	"github.com/coschain/cos-wallet/iservices"
	"github.com/coschain/cos-wallet/unlock"
	"github.com/coschain/cos-wallet/wallet"
)

var (
	ErrUnknownCredential = errors.New("account has an unknown credential")
	ErrNoFederatedUnlock = errors.New("federated unlock is not available")
)

// LockStatus tells whether an account is currently locked.
type LockStatus interface {
	IsLocked(id string) (bool, error)
}

// Control is the lock/unlock affordance of one account list.
type Control struct {
	coord     *unlock.Coordinator
	status    LockStatus
	federated iservices.IFederated
}

// NewControl builds a control. With a nil status every account is taken as
// locked.
func NewControl(coord *unlock.Coordinator, status LockStatus, federated iservices.IFederated) *Control {
	return &Control{coord: coord, status: status, federated: federated}
}

// Unlock takes the unlock path of the account's credential and waits until
// it completes. An account that is already unlocked is left alone.
func (c *Control) Unlock(ctx context.Context, acct *wallet.Account) error {
	if c.status != nil {
		locked, err := c.status.IsLocked(acct.ID)
		if err != nil {
			return err
		}
		if !locked {
			return nil
		}
	}
	switch cred := acct.Credential.(type) {
	case wallet.PasswordCredential:
		return c.coord.RequestUnlock(acct.ID).Wait(ctx)
	case wallet.FederatedCredential:
		if c.federated == nil {
			return ErrNoFederatedUnlock
		}
		return c.federated.Unlock(ctx, acct, cred)
	default:
		return ErrUnknownCredential
	}
}

// Lock reports its outcome as a toast.
func (c *Control) Lock(ctx context.Context, acct *wallet.Account) {
	c.coord.LockAccount(ctx, acct.ID)
}

// Toggle unlocks a locked account and locks an unlocked one.
func (c *Control) Toggle(ctx context.Context, acct *wallet.Account, locked bool) error {
	if locked {
		return c.Unlock(ctx, acct)
	}
	c.Lock(ctx, acct)
	return nil
}

func Label(acct *wallet.Account, locked bool) string {
	if !locked {
		return "Lock"
	}
	if cred, ok := acct.Credential.(wallet.FederatedCredential); ok && cred.Provider != "" {
		return fmt.Sprintf("Unlock with %s", cred.Provider)
	}
	return "Unlock"
}
