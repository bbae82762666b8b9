package cli

import (
	"fmt"

	"github.com/dan13ram/ada-bridge/app"
	ckb "github.com/dan13ram/ada-bridge/ckb/client"
	"github.com/spf13/cobra"
)

type BalanceOptions struct {
	Origin   bool
	WalletID string
}

// NewBalanceOfCommand prints the bridged token balance of a ckb address, or
// the available lovelace of the cardano wallet with --origin.
func NewBalanceOfCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BalanceOptions{}

	cmd := &cobra.Command{
		Use:          "balance-of [ckb-address]",
		Short:        "Show a bridged token or ada balance",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			address := ""
			if len(args) > 0 {
				address = args[0]
			}
			return runBalanceOf(rootOpts, opts, cmd, address)
		},
	}

	cmd.Flags().BoolVar(&opts.Origin, "origin", false, "query the cardano wallet instead of ckb")
	cmd.Flags().StringVar(&opts.WalletID, "wallet-id", "", "cardano wallet id, defaults to the configured wallet")

	return cmd
}

func runBalanceOf(rootOpts *RootOptions, opts *BalanceOptions, cmd *cobra.Command, address string) error {
	loadConfig(rootOpts)

	if opts.Origin {
		walletID := opts.WalletID
		if walletID == "" {
			walletID = app.Config.Cardano.WalletID
		}
		client, err := cardanoNewClient(app.Config.Cardano)
		if err != nil {
			return err
		}
		balance, err := client.GetAvailableBalance(walletID)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), balance)
		return nil
	}

	var owner ckb.Script
	var err error
	if address != "" {
		owner, err = ckb.LockScriptFromAddress(address, app.Config.Ckb.LockScript)
	} else {
		signer, signerErr := createCkbSigner()
		if signerErr != nil {
			return signerErr
		}
		owner, err = ckb.LockScriptFromSigner(signer, app.Config.Ckb.LockScript)
		signer.Destroy()
	}
	if err != nil {
		return err
	}

	sudt, err := ckb.ScriptFromConfig(app.Config.Ckb.SudtTypeScript)
	if err != nil {
		return err
	}

	client, err := ckbNewClient(app.Config.Ckb)
	if err != nil {
		return err
	}
	balance, err := client.GetTokenBalance(sudt, owner)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), balance.String())
	return nil
}
