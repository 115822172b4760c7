package dataset

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/statcalc/statcalc/pkg/client"
)

func ClearCmd(c client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every value from the dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Clear(context.TODO()); err != nil {
				return err
			}

			cmd.Println("Cleared dataset")
			return nil
		},
	}
}
