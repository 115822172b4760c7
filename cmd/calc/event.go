package calc

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/statcalc/statcalc/cmd/util"
	"github.com/statcalc/statcalc/pkg/client"
)

var eventExample = `
# Probability of A or B for independent events
statcalc calc event union --pa 0.5 --pb 0.2

# P(B) is derived from the intersection
statcalc calc event xor --pa 0.5 --inter 0.25

# Complements are accepted in place of P(A) and P(B)
statcalc calc event neither --pa-not 0.5 --pb-not 0.5`

var eventOps = []string{"pa_not", "pb_not", "inter", "union", "xor", "neither"}

func EventCmd(c client.Client) *cobra.Command {
	var pa, pb, paNot, pbNot, inter string

	cmd := &cobra.Command{
		Use:       "event <op>",
		Short:     "Probability of an operation over two events A and B",
		Long:      fmt.Sprintf("Probability of an operation over two events A and B.\n\nop can be one of: %v", eventOps),
		Example:   eventExample,
		ValidArgs: eventOps,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("must specify an op")
			}

			req := &client.EventOpRequest{Op: args[0]}
			for _, p := range []struct {
				flag  string
				value string
				dst   **float64
			}{
				{"pa", pa, &req.PA},
				{"pb", pb, &req.PB},
				{"pa-not", paNot, &req.PANot},
				{"pb-not", pbNot, &req.PBNot},
				{"inter", inter, &req.Inter},
			} {
				if p.value == "" {
					continue
				}

				v, err := strconv.ParseFloat(p.value, 64)
				if err != nil {
					return fmt.Errorf("--%s must be a number, got %q", p.flag, p.value)
				}
				*p.dst = &v
			}

			outcome, err := c.EventOp(context.TODO(), req)
			if err != nil {
				return err
			}

			cmd.Printf("%s = %s\n", outcome.Label, util.Number(outcome.Result))
			return nil
		},
	}

	cmd.Flags().StringVar(&pa, "pa", "", "P(A)")
	cmd.Flags().StringVar(&pb, "pb", "", "P(B)")
	cmd.Flags().StringVar(&paNot, "pa-not", "", "P(A')")
	cmd.Flags().StringVar(&pbNot, "pb-not", "", "P(B')")
	cmd.Flags().StringVar(&inter, "inter", "", "P(A∩B)")

	return cmd
}
