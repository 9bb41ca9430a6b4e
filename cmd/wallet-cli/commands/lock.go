package commands

import (
	"github.com/coschain/cobra"
)

var LockCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lock",
		Short:   "lock an account or an account source",
		Example: "lock [id]",
		Args:    cobra.ExactArgs(1),
		Run:     lock,
	}
	return cmd
}

// lock reports through the toast notice
func lock(cmd *cobra.Command, args []string) {
	id := args[0]
	if acc, err := walletOf(cmd).Account(id); err == nil {
		controlOf(cmd).Lock(commandContext(cmd), acc)
		return
	}
	coordinatorOf(cmd).LockAccount(commandContext(cmd), id)
}
