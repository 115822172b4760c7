package dataset

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/statcalc/statcalc/pkg/client"
)

var addExample = `
# Add a single value
statcalc dataset add 4.2

# Add several values, negative values follow --
statcalc dataset add 1 2 3 -- -4`

func AddCmd(c client.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <value>...",
		Short:   "Add values to the dataset",
		Example: addExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("must specify at least one value")
			}

			values := make([]float64, len(args))
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid value %q", arg)
				}
				values[i] = v
			}

			for _, v := range values {
				if err := c.AddData(context.TODO(), v); err != nil {
					return err
				}
			}

			cmd.Printf("Added %d value(s)\n", len(values))
			return nil
		},
	}

	return cmd
}
