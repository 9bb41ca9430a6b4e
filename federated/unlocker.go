package federated

import (
	"context"

	"github.com/coschain/cos-wallet/wallet"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Backend unlocks a federated account for a verified identity.
type Backend interface {
	UnlockFederatedAccount(ctx context.Context, id, subject string) error
}

// Unlocker unlocks federated accounts by signing their owner in again.
type Unlocker struct {
	auth     Authenticator
	verifier *TokenVerifier
	backend  Backend
	log      *logrus.Logger
}

func NewUnlocker(auth Authenticator, verifier *TokenVerifier, backend Backend, log *logrus.Logger) *Unlocker {
	return &Unlocker{auth: auth, verifier: verifier, backend: backend, log: log}
}

func (u *Unlocker) Unlock(ctx context.Context, acct *wallet.Account, cred wallet.FederatedCredential) error {
	token, err := u.auth.Reauthenticate(ctx, cred)
	if err != nil {
		return errors.Wrap(err, "re-authentication failed")
	}
	claims, err := u.verifier.Verify(token)
	if err != nil {
		return err
	}
	if claims.Issuer != cred.Issuer || claims.Subject != cred.Subject {
		u.log.Warnf("account %s: signed in as %s/%s", acct.ID, claims.Issuer, claims.Subject)
		return wallet.ErrIdentityMismatch
	}
	return u.backend.UnlockFederatedAccount(ctx, acct.ID, claims.Subject)
}
