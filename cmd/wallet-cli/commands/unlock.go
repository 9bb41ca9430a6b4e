package commands

import (
	"fmt"

	"github.com/coschain/cobra"
	"github.com/coschain/cos-wallet/wallet"
)

var UnlockCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "unlock",
		Short:   "unlock an account or an account source",
		Example: "unlock [id]",
		Args:    cobra.ExactArgs(1),
		Run:     unlockc,
	}
	return cmd
}

func unlockc(cmd *cobra.Command, args []string) {
	w := walletOf(cmd)
	id := args[0]
	ctx := commandContext(cmd)

	var err error
	acc, lookupErr := w.Account(id)
	switch {
	case lookupErr == nil:
		id = acc.ID
		err = controlOf(cmd).Unlock(ctx, acc)
	case isSource(w.Sources(), id):
		var locked bool
		if locked, err = w.IsLocked(id); err == nil && locked {
			err = coordinatorOf(cmd).RequestUnlock(id).Wait(ctx)
		}
	default:
		fmt.Println(fmt.Sprintf("error: %v", lookupErr))
		return
	}
	if err != nil {
		fmt.Println(fmt.Sprintf("error: %v", err))
		return
	}
	fmt.Println(fmt.Sprintf("unlock %s success", id))
}

func isSource(sources []*wallet.AccountSource, id string) bool {
	for _, src := range sources {
		if src.ID == id {
			return true
		}
	}
	return false
}
