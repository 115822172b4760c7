package dataset

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/statcalc/statcalc/cmd/util"
	"github.com/statcalc/statcalc/pkg/client"
)

func ListCmd(c client.Client) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the dataset in ascending order",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := c.Dataset(context.TODO())
			if err != nil {
				return err
			}

			if output == "json" {
				b, err := json.Marshal(values)
				if err != nil {
					return err
				}

				cmd.Println(string(b))
				return nil
			}

			if len(values) == 0 {
				cmd.Println("Dataset is empty")
				return nil
			}

			tbl := util.Table(cmd.OutOrStdout(), "#", "VALUE")
			for i, v := range values {
				tbl.AppendRow([]any{i + 1, util.Number(v)})
			}
			tbl.AppendFooter([]any{"", fmt.Sprintf("%d values", len(values))})
			tbl.Render()

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format, can be one of: json")

	return cmd
}
