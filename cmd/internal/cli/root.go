// Package cli builds the terminal front end: an interactive console plus
// add and cancel subcommands.
package cli

import (
	"consultas/cmd/internal/bootstrap"
	"consultas/cmd/internal/config"
	"consultas/cmd/internal/service"
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

type RootOptions struct {
	EnvFile string
	Prompt  bool
}

// StoreOpener opens the appointment store for a command. Tests swap it
// for an in-memory store.
type StoreOpener func(cfg *config.Config) (*service.AppointmentStore, func() error, error)

func NewRootCommand(open StoreOpener) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "consultas",
		Short:         "Medical appointment scheduler",
		Long:          "Schedule, cancel and query medical appointments from the terminal.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, open, func(store *service.AppointmentStore) error {
				return runConsole(cmd, opts, store)
			})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env", ".env", "path to the .env file")
	cmd.Flags().BoolVar(&opts.Prompt, "prompt", true, "print a prompt before each command")

	cmd.AddCommand(NewAddCommand(opts, open))
	cmd.AddCommand(NewCancelCommand(opts, open))

	return cmd
}

func withStore(opts *RootOptions, open StoreOpener, fn func(store *service.AppointmentStore) error) error {
	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return err
	}
	log.SetLevel(cfg.LogLevel)

	if open == nil {
		open = bootstrap.OpenStore
	}
	store, closeStore, err := open(cfg)
	if err != nil {
		return err
	}

	err = fn(store)
	if cerr := closeStore(); cerr != nil && err == nil {
		err = fmt.Errorf("failed to close storage: %w", cerr)
	}
	return err
}
