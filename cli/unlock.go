package cli

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
	"github.com/dan13ram/ada-bridge/app"
	"github.com/dan13ram/ada-bridge/ckb"
	"github.com/dan13ram/ada-bridge/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

type UnlockOptions struct {
	PrivateKey string
	Mnemonic   string
	Asset      string
	Wait       bool
	Timeout    time.Duration
}

// NewUnlockCommand burns the bridged token on ckb so ada is released to a cardano recipient.
func NewUnlockCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UnlockOptions{}

	cmd := &cobra.Command{
		Use:          "unlock <amount> <cardano-recipient>",
		Short:        "Burn on ckb to unlock ada",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			return runUnlock(rootOpts, opts, cmd, amount, args[1])
		},
	}

	cmd.Flags().StringVar(&opts.PrivateKey, "private-key", "", "hex secp256k1 private key of the burner")
	cmd.Flags().StringVar(&opts.Mnemonic, "mnemonic", "", "mnemonic of the burner")
	cmd.Flags().StringVar(&opts.Asset, "asset", "", "bridged asset, defaults to the configured asset")
	cmd.Flags().BoolVar(&opts.Wait, "wait", false, "wait until the unlock succeeds")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", DefaultWaitTimeout, "how long to wait")

	return cmd
}

func burnSigner(opts *UnlockOptions) (common.Signer, error) {
	if opts.PrivateKey != "" {
		key, err := crypto.HexToECDSA(common.Strip0xPrefix(opts.PrivateKey))
		if err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
		return common.NewPrivateKeySigner(key), nil
	}
	if opts.Mnemonic != "" {
		return common.NewMnemonicSigner(opts.Mnemonic)
	}
	return createCkbSigner()
}

func runUnlock(rootOpts *RootOptions, opts *UnlockOptions, cmd *cobra.Command, amount math.Int, recipient string) error {
	loadConfig(rootOpts)

	signer, err := burnSigner(opts)
	if err != nil {
		return err
	}
	defer signer.Destroy()

	asset := opts.Asset
	if asset == "" {
		asset = app.Config.Bridge.Asset
	}

	client, err := ckbNewClient(app.Config.Ckb)
	if err != nil {
		return err
	}

	hash, err := ckb.SendBurn(client, signer, recipient, asset, amount)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hash)

	if !opts.Wait {
		return nil
	}

	initDB()
	defer app.DB.Disconnect()

	unlock, err := ckb.WaitForUnlock(hash, DefaultWaitInterval, opts.Timeout)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), unlock.AdaTxHash)
	return nil
}
