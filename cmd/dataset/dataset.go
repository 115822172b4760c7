package dataset

import (
	"github.com/spf13/cobra"
	"github.com/statcalc/statcalc/pkg/client"
)

func NewCmd() *cobra.Command {
	var (
		c      = client.New()
		server string
	)

	cmd := &cobra.Command{
		Use:     "dataset",
		Aliases: []string{"data"},
		Short:   "Manage the dataset",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.Setup(server)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// Add subcommands
	cmd.AddCommand(AddCmd(c))
	cmd.AddCommand(ListCmd(c))
	cmd.AddCommand(ClearCmd(c))

	// Flags
	cmd.PersistentFlags().StringVarP(&server, "server", "", "http://127.0.0.1:8080", "statcalc url")

	return cmd
}
