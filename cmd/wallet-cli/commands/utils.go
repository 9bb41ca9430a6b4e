package commands

import (
	"context"
	"fmt"
	"strings"
	"syscall"

	"github.com/coschain/cobra"
	"github.com/coschain/cos-wallet/accountui"
	"github.com/coschain/cos-wallet/iservices"
	"github.com/coschain/cos-wallet/prompt"
	"github.com/coschain/cos-wallet/unlock"
)

func walletOf(cmd *cobra.Command) iservices.IWallet {
	return cmd.Context["wallet"].(iservices.IWallet)
}

func coordinatorOf(cmd *cobra.Command) *unlock.Coordinator {
	return cmd.Context["coordinator"].(*unlock.Coordinator)
}

func controlOf(cmd *cobra.Command) *accountui.Control {
	return cmd.Context["control"].(*accountui.Control)
}

func readerOf(cmd *cobra.Command) prompt.PasswordReader {
	return cmd.Context["preader"].(prompt.PasswordReader)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx, ok := cmd.Context["ctx"].(context.Context); ok {
		return ctx
	}
	return context.Background()
}

func getPassphrase(reader prompt.PasswordReader, hint string) (string, error) {
	fmt.Print(hint + " > ")
	bytePassphrase, err := reader.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(bytePassphrase), "\r\n"), nil
}

// getNewPassphrase asks twice for a password that protects a new secret.
func getNewPassphrase(reader prompt.PasswordReader) (string, error) {
	passphrase, err := getPassphrase(reader, "Enter passphrase")
	if err != nil {
		return "", err
	}
	if len(passphrase) == 0 {
		return "", fmt.Errorf("empty passphrase")
	}
	confirm, err := getPassphrase(reader, "Repeat passphrase")
	if err != nil {
		return "", err
	}
	if confirm != passphrase {
		return "", fmt.Errorf("passphrases do not match")
	}
	return passphrase, nil
}
