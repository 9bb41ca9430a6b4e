package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coschain/cobra"
	"github.com/coschain/cos-wallet/common/constants"
	"github.com/coschain/cos-wallet/config"
)

var (
	cfgName string
	dataDir string
)

var InitCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration files",
		Run:   initConf,
	}
	cmd.Flags().StringVarP(&cfgName, "name", "n", "", "wallet name (default is coswallet)")
	cmd.Flags().StringVarP(&dataDir, "datadir", "d", "", "data directory (default is ~/.coswallet)")
	return cmd
}

func initConf(cmd *cobra.Command, args []string) {
	_, _ = cmd, args
	cfg := config.DefaultWalletConfig
	if cfgName == "" {
		cfg.Name = constants.WalletName
	} else {
		cfg.Name = cfgName
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	confdir := filepath.Join(cfg.DataDir, cfg.Name)
	if _, err := os.Stat(confdir); os.IsNotExist(err) {
		if err = os.MkdirAll(confdir, 0700); err != nil {
			fmt.Println(err)
			return
		}
	}
	if err := config.WriteWalletConfigFile(confdir, cfg, 0600); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(fmt.Sprintf("config written to %s", filepath.Join(confdir, config.ConfigFileName)))
}
