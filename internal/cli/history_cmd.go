package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newHistoryCmd groups the non-interactive history maintenance commands.
func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "historico",
		Aliases: []string{"history"},
		Short:   "Exporta ou limpa o histórico de registros",
	}
	cmd.AddCommand(
		newHistoryExportCmd(app),
		newHistoryResetCmd(app),
	)
	return cmd
}

func newHistoryExportCmd(app *App) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta o histórico em CSV ou texto",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("criando arquivo de exportação: %w", err)
				}
				defer f.Close()
				out = f
			}

			switch format {
			case "csv":
				return app.History.ExportCSV(out)
			case "txt", "text":
				return app.History.ExportText(out)
			default:
				return fmt.Errorf("formato desconhecido %q (use csv ou txt)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "formato de saída: csv ou txt")
	cmd.Flags().StringVarP(&output, "output", "o", "", "arquivo de destino (padrão: stdout)")
	return cmd
}

func newHistoryResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Apaga todos os registros do histórico",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("a limpeza apaga todos os registros; confirme com --yes")
			}
			total := app.History.Total()
			if err := app.History.Reset(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Histórico limpo (%d registros removidos).\n", total)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirma a limpeza sem perguntar")
	return cmd
}
