package cli

import (
	"consultas/cmd/internal/console"
	"consultas/cmd/internal/service"

	"github.com/spf13/cobra"
)

func runConsole(cmd *cobra.Command, opts *RootOptions, store *service.AppointmentStore) error {
	repl := &console.REPL{
		Interpreter: console.NewInterpreter(store),
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		Prompt:      opts.Prompt,
	}
	return repl.Run()
}
