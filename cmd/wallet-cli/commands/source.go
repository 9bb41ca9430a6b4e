package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/coschain/cobra"
)

var entropyHex string

var SourceCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "source",
		Short: "manage mnemonic account sources",
	}

	createCmd := &cobra.Command{
		Use:     "create",
		Short:   "create a mnemonic account source",
		Example: "source create [--entropy hex]",
		Args:    cobra.NoArgs,
		Run:     createSource,
	}
	createCmd.Flags().StringVarP(&entropyHex, "entropy", "e", "", "hex entropy, 16 to 32 bytes (default is fresh 32 bytes)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list account sources",
		Args:  cobra.NoArgs,
		Run:   listSources,
	}

	cmd.AddCommand(createCmd)
	cmd.AddCommand(listCmd)
	return cmd
}

func createSource(cmd *cobra.Command, args []string) {
	defer func() {
		entropyHex = ""
	}()
	w := walletOf(cmd)
	var entropy []byte
	if entropyHex != "" {
		var err error
		if entropy, err = hex.DecodeString(strings.TrimPrefix(entropyHex, "0x")); err != nil {
			fmt.Println(fmt.Sprintf("error: invalid entropy: %v", err))
			return
		}
	}
	passphrase, err := getNewPassphrase(readerOf(cmd))
	if err != nil {
		fmt.Println(err)
		return
	}
	id, err := w.CreateMnemonicAccountSource(commandContext(cmd), passphrase, entropy)
	if err != nil {
		fmt.Println(fmt.Sprintf("error: %v", err))
		return
	}
	fmt.Println(fmt.Sprintf("account source %s created", id))
}

func listSources(cmd *cobra.Command, args []string) {
	w := walletOf(cmd)
	for _, src := range w.Sources() {
		status := "  locked"
		if locked, _ := w.IsLocked(src.ID); !locked {
			status = "unlocked"
		}
		fmt.Println(fmt.Sprintf("source: %s | accounts: %d | status: %s", src.ID, src.NextIndex, status))
	}
}
