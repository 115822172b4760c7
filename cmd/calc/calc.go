package calc

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/statcalc/statcalc/cmd/util"
	"github.com/statcalc/statcalc/pkg/client"
)

func NewCmd() *cobra.Command {
	var (
		c      = client.New()
		server string
	)

	cmd := &cobra.Command{
		Use:     "calc",
		Aliases: []string{"calculate"},
		Short:   "Run a calculation, every result is recorded in the history",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.Setup(server)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// Add subcommands
	cmd.AddCommand(DescriptiveCmd("mean", "Arithmetic mean of the dataset", "Mean", c.Mean))
	cmd.AddCommand(DescriptiveCmd("median", "Median of the dataset", "Median", c.Median))
	cmd.AddCommand(DescriptiveCmd("sd", "Population standard deviation of the dataset", "Std Dev", c.StandardDeviation))
	cmd.AddCommand(ModeCmd(c))
	cmd.AddCommand(CombinatoricsCmds(c)...)
	cmd.AddCommand(BinomialCmd(c))
	cmd.AddCommand(EventCmd(c))

	// Flags
	cmd.PersistentFlags().StringVarP(&server, "server", "", "http://127.0.0.1:8080", "statcalc url")

	return cmd
}

// DescriptiveCmd returns a command that prints the result of a
// statistic computed over the whole dataset.
func DescriptiveCmd(use string, short string, label string, f func(context.Context) (float64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := f(context.TODO())
			if err != nil {
				return err
			}

			cmd.Printf("%s: %s\n", label, util.Number(v))
			return nil
		},
	}
}

func ModeCmd(c client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "mode",
		Short: "Most frequent values of the dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := c.Mode(context.TODO())
			if err != nil {
				return err
			}

			cmd.Printf("Mode: %s\n", util.Number(mode.Result))
			if len(mode.Modes) > 1 {
				all := make([]string, len(mode.Modes))
				for i, m := range mode.Modes {
					all[i] = util.Number(m)
				}
				cmd.Printf("Modes: %v\n", all)
			}

			return nil
		},
	}
}
