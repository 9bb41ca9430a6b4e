package iservices

import (
	"context"

	"github.com/coschain/cos-wallet/wallet"
)

var FederatedServerName = "federated"

// IFederated re-authenticates the owner of a federated account.
type IFederated interface {
	Unlock(ctx context.Context, acct *wallet.Account, cred wallet.FederatedCredential) error
}
