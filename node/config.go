package node

import (
	"path/filepath"

	"github.com/coschain/cos-wallet/iservices/service-configs"
)

const (
	datadirKeystore = "keystore"
	datadirLogs     = "logs"
)

type Config struct {
	// Name refers the name of wallet's instance
	Name string `toml:"-"`

	// Version should be set to the version number of the program.
	Version string `toml:"-"`

	// DataDir is the root folder that store data and configs
	DataDir string

	LogLevel string
	// LogAge is how many hours rotated log files are kept
	LogAge uint32

	Wallet    service_configs.WalletConfig
	Federated service_configs.FederatedConfig
}

// KeystoreDir returns the path to the account database.
func (c *Config) KeystoreDir() string {
	if c.DataDir == "" {
		return ""
	}
	return c.ResolvePath(datadirKeystore)
}

func (c *Config) LogDir() string {
	if c.DataDir == "" {
		return ""
	}
	return c.ResolvePath(datadirLogs)
}

func (c *Config) name() string {
	if c.Name == "" {
		panic("empty wallet name, set Config.Name")
	}
	return c.Name
}

// ResolvePath resolves path in the instance directory.
func (c *Config) ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if c.DataDir == "" {
		return ""
	}
	return filepath.Join(c.InstanceDir(), path)
}

func (c *Config) InstanceDir() string {
	if c.DataDir == "" {
		return ""
	}
	return filepath.Join(c.DataDir, c.name())
}
