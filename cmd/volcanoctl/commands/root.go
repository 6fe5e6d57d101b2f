// Package commands implements the volcanoctl admin CLI.
package commands

import (
	"volcano-insurance-api/internal/config"
	"volcano-insurance-api/internal/observability"

	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "volcanoctl",
		Short:        "Administer the volcano insurance database",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			observability.NewLogger(cfg.LogLevel, "console")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "configs", "directory containing app.env")

	root.AddCommand(migrateCmd(), importPostalCodesCmd())
	return root
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}
