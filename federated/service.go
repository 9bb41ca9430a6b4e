package federated

import (
	"io"

	"github.com/coschain/cos-wallet/iservices"
	"github.com/coschain/cos-wallet/node"
)

// Service is the federated unlock path of a node: the callback server plus
// the unlocker using it.
type Service struct {
	*CallbackServer
	*Unlocker
}

var _ iservices.IFederated = (*Service)(nil)

// New builds the service from the [federated] config. The wallet service
// must have been registered before.
func New(ctx *node.ServiceContext, out io.Writer) (*Service, error) {
	s, err := ctx.Service(iservices.WalletServerName)
	if err != nil {
		return nil, err
	}
	backend, ok := s.(Backend)
	if !ok {
		return nil, &node.ServiceTypeError{Name: iservices.WalletServerName, Want: "federated.Backend"}
	}
	cfg := ctx.Config().Federated
	server := NewCallbackServer(cfg.Listen, ctx.Log())
	verifier := NewTokenVerifier(cfg.SigningKey, cfg.Issuer, cfg.ClientID)
	return &Service{
		CallbackServer: server,
		Unlocker:       NewUnlocker(NewReauthenticator(cfg, server, out), verifier, backend, ctx.Log()),
	}, nil
}
