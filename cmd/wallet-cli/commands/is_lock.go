package commands

import (
	"fmt"

	"github.com/coschain/cobra"
)

var IsLockedCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "locked",
		Short:   "whether an account or an account source is locked",
		Example: "locked [id]",
		Args:    cobra.ExactArgs(1),
		Run:     isLocked,
	}
	return cmd
}

func isLocked(cmd *cobra.Command, args []string) {
	w := walletOf(cmd)
	id := args[0]
	l, err := w.IsLocked(id)
	if err != nil {
		fmt.Println(fmt.Sprintf("unknown account %s.", id))
		return
	}
	if l {
		fmt.Println(fmt.Sprintf("%s has been locked", id))
	} else {
		fmt.Println(fmt.Sprintf("%s has been unlocked", id))
	}
}
