package commands

import (
	"fmt"

	"github.com/coschain/cobra"
	"github.com/coschain/cos-wallet/wallet"
)

var AccountCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "manage accounts",
	}

	createCmd := &cobra.Command{
		Use:     "create",
		Short:   "derive the next account of an unlocked source",
		Example: "account create [source]",
		Args:    cobra.ExactArgs(1),
		Run:     createAccount,
	}

	federatedCmd := &cobra.Command{
		Use:     "federated",
		Short:   "add an account owned by an identity provider login",
		Example: "account federated [provider] [issuer] [subject]",
		Args:    cobra.ExactArgs(3),
		Run:     addFederatedAccount,
	}

	cmd.AddCommand(createCmd)
	cmd.AddCommand(federatedCmd)
	return cmd
}

func createAccount(cmd *cobra.Command, args []string) {
	w := walletOf(cmd)
	accounts, err := w.CreateAccounts(commandContext(cmd), wallet.MnemonicDerived, args[0])
	if err != nil {
		fmt.Println(fmt.Sprintf("error: %v", err))
		return
	}
	for _, acc := range accounts {
		fmt.Println(fmt.Sprintf("account %s created: %s (%s)", acc.ID, acc.Address, acc.DerivationPath))
	}
}

func addFederatedAccount(cmd *cobra.Command, args []string) {
	w := walletOf(cmd)
	acc, err := w.AddFederatedAccount(commandContext(cmd), args[0], args[1], args[2])
	if err != nil {
		fmt.Println(fmt.Sprintf("error: %v", err))
		return
	}
	fmt.Println(fmt.Sprintf("account %s added: %s", acc.ID, acc.Address))
}
