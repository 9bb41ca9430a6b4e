package iservices

import (
	"context"

	"github.com/coschain/cos-wallet/wallet"
)

var WalletServerName = "wallet"

// IWallet is the account store used by the command line and the unlock flow.
type IWallet interface {
	wallet.Backend

	ImportPrivateKey(ctx context.Context, password, hexKey string) (*wallet.Account, error)

	AddFederatedAccount(ctx context.Context, provider, issuer, subject string) (*wallet.Account, error)

	// UnlockFederatedAccount unlocks id for the verified identity subject
	UnlockFederatedAccount(ctx context.Context, id, subject string) error

	RemoveAccount(ctx context.Context, id string) error

	// RemoveAccountSource also removes the accounts derived from id and
	// returns their ids
	RemoveAccountSource(ctx context.Context, id string) ([]string, error)

	IsLocked(id string) (bool, error)

	Account(idOrAddress string) (*wallet.Account, error)

	Sources() []*wallet.AccountSource

	List() []string

	Info(id string) string
}
