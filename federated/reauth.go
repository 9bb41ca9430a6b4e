package federated

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/coschain/cos-wallet/iservices/service-configs"
	"github.com/coschain/cos-wallet/wallet"
	"github.com/google/uuid"
)

// Authenticator signs the owner of a federated credential in again and
// returns the id token of that login.
type Authenticator interface {
	Reauthenticate(ctx context.Context, cred wallet.FederatedCredential) (string, error)
}

// Reauthenticator sends the user to the provider login page and waits for
// the redirect on the callback server.
type Reauthenticator struct {
	cfg    service_configs.FederatedConfig
	server *CallbackServer
	out    io.Writer
}

func NewReauthenticator(cfg service_configs.FederatedConfig, server *CallbackServer, out io.Writer) *Reauthenticator {
	return &Reauthenticator{cfg: cfg, server: server, out: out}
}

func (r *Reauthenticator) LoginURL(state, hint string) string {
	v := url.Values{}
	v.Set("client_id", r.cfg.ClientID)
	v.Set("redirect_uri", r.server.RedirectURL())
	v.Set("state", state)
	if hint != "" {
		v.Set("login_hint", hint)
	}
	sep := "?"
	if strings.Contains(r.cfg.AuthURL, "?") {
		sep = "&"
	}
	return r.cfg.AuthURL + sep + v.Encode()
}

func (r *Reauthenticator) Reauthenticate(ctx context.Context, cred wallet.FederatedCredential) (string, error) {
	if r.cfg.AuthURL == "" {
		return "", ErrNotConfigured
	}
	state := uuid.New().String()
	result, done := r.server.expect(state)
	defer done()

	provider := cred.Provider
	if provider == "" {
		provider = r.cfg.Provider
	}
	fmt.Fprintf(r.out, "Sign in with %s to unlock:\n%s\n", provider, r.LoginURL(state, cred.Subject))

	select {
	case res := <-result:
		return res.token, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
