package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/statcalc/statcalc/cmd/calc"
	"github.com/statcalc/statcalc/cmd/config"
	"github.com/statcalc/statcalc/cmd/dataset"
	"github.com/statcalc/statcalc/cmd/history"
	"github.com/statcalc/statcalc/cmd/migrate"
	"github.com/statcalc/statcalc/cmd/serve"
	"github.com/statcalc/statcalc/cmd/version"
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "statcalc",
		Short:        "Statistics calculator server and client",
		SilenceUsage: true,
	}

	// Add Subcommands
	cmd.AddCommand(serve.NewCmd(&config.Config{}, viper.New()))
	cmd.AddCommand(migrate.NewCmd(&config.Config{}, viper.New()))
	cmd.AddCommand(dataset.NewCmd())
	cmd.AddCommand(calc.NewCmd())
	cmd.AddCommand(history.NewCmd())
	cmd.AddCommand(version.NewCmd())

	// Set default output
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	return cmd
}

func Execute() {
	if err := NewCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
