package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dan13ram/ada-bridge/app"
	"github.com/dan13ram/ada-bridge/cardano"
	"github.com/spf13/cobra"
)

type LockOptions struct {
	WalletID   string
	Passphrase string
	Wait       bool
	Timeout    time.Duration
}

// NewLockCommand locks lovelace on cardano to mint the bridged token for a ckb recipient.
func NewLockCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LockOptions{}

	cmd := &cobra.Command{
		Use:          "lock <amount> <ckb-recipient>",
		Short:        "Lock ada to mint on ckb",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			return runLock(rootOpts, opts, cmd, amount, args[1])
		},
	}

	cmd.Flags().StringVar(&opts.WalletID, "wallet-id", "", "cardano wallet id, defaults to the configured wallet")
	cmd.Flags().StringVar(&opts.Passphrase, "passphrase", "", "cardano wallet passphrase, defaults to the configured passphrase")
	cmd.Flags().BoolVar(&opts.Wait, "wait", false, "wait until the lock tx is in the ledger")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", DefaultWaitTimeout, "how long to wait")

	return cmd
}

func runLock(rootOpts *RootOptions, opts *LockOptions, cmd *cobra.Command, amount uint64, recipient string) error {
	loadConfig(rootOpts)
	initDB()
	defer app.DB.Disconnect()

	walletID := opts.WalletID
	if walletID == "" {
		walletID = app.Config.Cardano.WalletID
	}
	passphrase := opts.Passphrase
	if passphrase == "" {
		passphrase = app.Config.Cardano.Passphrase
	}

	client, err := cardanoNewClient(app.Config.Cardano)
	if err != nil {
		return err
	}

	txID, err := cardano.SendLock(client, walletID, amount, passphrase, recipient)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), txID)

	if !opts.Wait {
		return nil
	}

	if _, err := cardano.WaitForTransaction(client, walletID, txID, DefaultWaitInterval, opts.Timeout); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "in ledger")
	return nil
}
