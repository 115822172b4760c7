package version

import (
	"github.com/spf13/cobra"
	"github.com/statcalc/statcalc/internal/version"
)

func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the statcalc version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("statcalc", version.Full())
		},
	}
}
