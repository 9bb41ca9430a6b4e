package wallet

import (
	"time"

	"github.com/coschain/cos-wallet/db/storage"
	"github.com/coschain/cos-wallet/node"
)

// New opens the keystore of the node's instance directory.
func New(ctx *node.ServiceContext) (*BaseWallet, error) {
	cfg := ctx.Config()
	db, err := storage.NewLevelDatabase(cfg.KeystoreDir())
	if err != nil {
		return nil, err
	}
	ctx.Log().Debugf("keystore at %s", db.FileName())
	opts := []Option{WithNoticer(ctx.Noticer())}
	if cfg.Wallet.HDPath != "" {
		if _, err := ParseDerivationPath(cfg.Wallet.HDPath); err != nil {
			_ = db.Close()
			return nil, err
		}
		opts = append(opts, WithHDPath(cfg.Wallet.HDPath))
	}
	if cfg.Wallet.AutoLockMinutes > 0 {
		opts = append(opts, WithAutoLock(time.Duration(cfg.Wallet.AutoLockMinutes)*time.Minute, time.Minute))
	}
	return NewBaseWallet(cfg.Name, db, ctx.Log(), opts...), nil
}

func (w *BaseWallet) Start(n *node.Node) error {
	return w.Open()
}

func (w *BaseWallet) Stop() error {
	return w.Close()
}
