package config

import (
	"path/filepath"

	"github.com/coschain/cos-wallet/common/constants"
	"github.com/coschain/cos-wallet/iservices/service-configs"
	"github.com/coschain/cos-wallet/node"
	"github.com/mitchellh/go-homedir"
)

// DefaultWalletConfig contains reasonable default settings.
var DefaultWalletConfig = node.Config{
	Name:     constants.WalletName,
	DataDir:  DefaultDataDir(),
	LogLevel: constants.DefaultLogLevel,
	LogAge:   constants.DefaultLogAge,
	Wallet: service_configs.WalletConfig{
		AutoLockMinutes: constants.DefaultAutoLock,
		PromptAttempts:  constants.DefaultAttempts,
		HDPath:          constants.DefaultHDPath,
	},
	Federated: service_configs.FederatedConfig{
		Listen: constants.DefaultCallback,
	},
}

func DefaultDataDir() string {
	home, err := homedir.Dir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".coswallet")
}
