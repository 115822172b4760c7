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

var combinatoricsExample = `
# Number of ways to choose 2 out of 5
statcalc calc ncr 5 2

# Number of ordered arrangements of 2 out of 5
statcalc calc npr 5 2`

func CombinatoricsCmds(c client.Client) []*cobra.Command {
	return []*cobra.Command{
		combinatoricsCmd("ncr", "Number of combinations of r out of n", "nCr", c.NCr),
		combinatoricsCmd("npr", "Number of permutations of r out of n", "nPr", c.NPr),
	}
}

func combinatoricsCmd(use string, short string, label string, f func(context.Context, int64, int64) (float64, error)) *cobra.Command {
	return &cobra.Command{
		Use:     use + " <n> <r>",
		Short:   short,
		Example: combinatoricsExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("must specify n and r")
			}

			n, err := parseInt("n", args[0])
			if err != nil {
				return err
			}
			r, err := parseInt("r", args[1])
			if err != nil {
				return err
			}

			v, err := f(context.TODO(), n, r)
			if err != nil {
				return err
			}

			cmd.Printf("%s(%d, %d) = %s\n", label, n, r, util.Number(v))
			return nil
		},
	}
}

var binomialExample = `
# Probability of exactly 3 heads in 10 fair coin flips
statcalc calc binomial 10 3 0.5`

func BinomialCmd(c client.Client) *cobra.Command {
	return &cobra.Command{
		Use:     "binomial <n> <k> <p>",
		Short:   "Probability of exactly k successes in n trials",
		Example: binomialExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errors.New("must specify n, k and p")
			}

			n, err := parseInt("n", args[0])
			if err != nil {
				return err
			}
			k, err := parseInt("k", args[1])
			if err != nil {
				return err
			}
			p, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("p must be a number, got %q", args[2])
			}

			v, err := c.Binomial(context.TODO(), n, k, p)
			if err != nil {
				return err
			}

			cmd.Printf("Binomial(n=%d, k=%d, p=%g) = %s\n", n, k, p, util.Number(v))
			return nil
		},
	}
}

func parseInt(name string, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, s)
	}
	return v, nil
}
