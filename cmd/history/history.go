package history

import (
	"context"
	"encoding/json"

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
		Use:   "history",
		Short: "Inspect and rewind the history of results",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.Setup(server)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// Add subcommands
	cmd.AddCommand(ListCmd(c))
	cmd.AddCommand(UndoCmd(c))
	cmd.AddCommand(RedoCmd(c))

	// Flags
	cmd.PersistentFlags().StringVarP(&server, "server", "", "http://127.0.0.1:8080", "statcalc url")

	return cmd
}

func ListCmd(c client.Client) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recorded results, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.History(context.TODO())
			if err != nil {
				return err
			}

			if output == "json" {
				b, err := json.Marshal(entries)
				if err != nil {
					return err
				}

				cmd.Println(string(b))
				return nil
			}

			if len(entries) == 0 {
				cmd.Println("History is empty")
				return nil
			}

			tbl := util.Table(cmd.OutOrStdout(), "#", "OP", "RESULT")
			for i, e := range entries {
				tbl.AppendRow([]any{i + 1, e.Op, util.Number(e.Res)})
			}
			tbl.Render()

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format, can be one of: json")

	return cmd
}

func UndoCmd(c client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Undo the most recent result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Undo(context.TODO()); err != nil {
				return err
			}

			cmd.Println("Undo applied")
			return nil
		},
	}
}

func RedoCmd(c client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "redo",
		Short: "Redo the most recently undone result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Redo(context.TODO()); err != nil {
				return err
			}

			cmd.Println("Redo applied")
			return nil
		},
	}
}
