package commands

import (
	"fmt"

	"github.com/coschain/cobra"
)

var InfoCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "info",
		Short:   "display an account's info",
		Example: "info [account]",
		Args:    cobra.ExactArgs(1),
		Run:     info,
	}
	return cmd
}

func info(cmd *cobra.Command, args []string) {
	fmt.Println(walletOf(cmd).Info(args[0]))
}

var ListCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list all accounts",
		Args:  cobra.NoArgs,
		Run:   list,
	}
	return cmd
}

func list(cmd *cobra.Command, args []string) {
	for _, line := range walletOf(cmd).List() {
		fmt.Println(line)
	}
}
