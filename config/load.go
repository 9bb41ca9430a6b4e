package config

import (
	"path/filepath"

	"github.com/coschain/cos-wallet/node"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// LoadWalletConfig reads <dataDir>/<name>/config.toml. Values missing from the
// file keep their defaults.
func LoadWalletConfig(dataDir, name string) (node.Config, error) {
	cfg := DefaultWalletConfig
	cfg.Name = name
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(filepath.Join(cfg.DataDir, cfg.Name))
	if err := v.ReadInConfig(); err != nil {
		return cfg, errors.Wrap(err, "not initialized (do `init` first)")
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "malformed config")
	}
	cfg.Name = name
	if cfg.DataDir != "" {
		dir, err := filepath.Abs(cfg.DataDir)
		if err != nil {
			return cfg, err
		}
		cfg.DataDir = dir
	}
	return cfg, nil
}
