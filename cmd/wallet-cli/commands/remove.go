package commands

import (
	"fmt"
	"strings"

	"github.com/coschain/cobra"
)

var RemoveCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove",
		Short:   "remove an account, or an account source with its accounts",
		Example: "remove [id]",
		Args:    cobra.ExactArgs(1),
		Run:     remove,
	}
	return cmd
}

func remove(cmd *cobra.Command, args []string) {
	w := walletOf(cmd)
	id := args[0]
	ctx := commandContext(cmd)

	var removed []string
	if acc, err := w.Account(id); err == nil {
		if err := w.RemoveAccount(ctx, acc.ID); err != nil {
			fmt.Println(fmt.Sprintf("error: %v", err))
			return
		}
		removed = []string{acc.ID}
	} else {
		ids, err := w.RemoveAccountSource(ctx, id)
		if err != nil {
			fmt.Println(fmt.Sprintf("error: %v", err))
			return
		}
		removed = append(ids, id)
	}

	// a prompt for a removed id can never succeed
	coord := coordinatorOf(cmd)
	target := coord.AccountIDToUnlock()
	for _, r := range removed {
		if r == target {
			coord.HideUnlockModal()
			break
		}
	}
	fmt.Println(fmt.Sprintf("removed %s", strings.Join(removed, ", ")))
}
