package cli

import (
	"fmt"

	"github.com/erickthegreen/crafttable/internal/dispatch"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "crafttable" command. Running it with no
// subcommand starts the interactive TUI; an optional argument (ID, name or a
// "10 - Religação" combo) opens that service's form directly.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "crafttable [serviço]",
		Short: "Assistente de preenchimento para atendimento de call center",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				svc, ok := dispatch.ServiceFor(args[0])
				if !ok {
					return fmt.Errorf("serviço desconhecido: %q", args[0])
				}
				app.StartService = &svc
			}
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("a interface interativa precisa de um terminal; use os subcomandos (ex: crafttable historico export)")
			}
			return RunTUI(app)
		},
	}

	root.AddCommand(
		newHistoryCmd(app),
	)

	return root
}
