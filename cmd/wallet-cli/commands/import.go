package commands

import (
	"fmt"

	"github.com/coschain/cobra"
)

var ImportCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "import",
		Short:   "import an account",
		Example: "import [privkey]",
		Args:    cobra.ExactArgs(1),
		Run:     importAccount,
	}
	return cmd
}

func importAccount(cmd *cobra.Command, args []string) {
	w := walletOf(cmd)
	passphrase, err := getNewPassphrase(readerOf(cmd))
	if err != nil {
		fmt.Println(err)
		return
	}
	acc, err := w.ImportPrivateKey(commandContext(cmd), passphrase, args[0])
	if err != nil {
		fmt.Println(fmt.Sprintf("error: %v", err))
		return
	}
	fmt.Println(fmt.Sprintf("account %s imported: %s", acc.ID, acc.Address))
}
