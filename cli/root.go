package cli

import (
	"time"

	"github.com/dan13ram/ada-bridge/app"
	cardano "github.com/dan13ram/ada-bridge/cardano/client"
	ckb "github.com/dan13ram/ada-bridge/ckb/client"
	"github.com/spf13/cobra"
)

const (
	DefaultWaitInterval = 5 * time.Second
	DefaultWaitTimeout  = 10 * time.Minute
)

type RootOptions struct {
	ConfigPath string
	EnvPath    string
}

type RunFunc func(opts *RootOptions) error

var (
	cardanoNewClient = cardano.NewClient
	ckbNewClient     = ckb.NewClient
	initDB           = app.InitDB
	createCkbSigner  = app.CreateCkbSigner
)

var loadConfig = func(opts *RootOptions) {
	app.InitConfig(opts.ConfigPath, opts.EnvPath)
	app.InitLogger()
}

func NewRootCommand(run RunFunc) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ada-bridge",
		Short: "ADA <-> CKB bridge validator",
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to the yaml config file")
	cmd.PersistentFlags().StringVarP(&opts.EnvPath, "env", "e", "", "path to a .env file")

	cmd.AddCommand(NewRunCommand(opts, run))
	cmd.AddCommand(NewLockCommand(opts))
	cmd.AddCommand(NewUnlockCommand(opts))
	cmd.AddCommand(NewBalanceOfCommand(opts))

	return cmd
}

func NewRunCommand(opts *RootOptions, run RunFunc) *cobra.Command {
	return &cobra.Command{
		Use:          "run",
		Short:        "Run the validator services",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			loadConfig(opts)
			return run(opts)
		},
	}
}
