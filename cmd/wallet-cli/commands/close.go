package commands

import (
	"github.com/coschain/cobra"
)

var CloseCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close",
		Short: "close the wallet-cli",
		Run:   closec,
	}
	return cmd
}

func closec(cmd *cobra.Command, args []string) {
	_ = args
	if quit, ok := cmd.Context["quit"].(func()); ok {
		quit()
	}
}
