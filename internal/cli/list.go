package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/csvplot/pkg/table"
)

// listCommand creates the list command, which prints a CSV file's rows.
func (c *CLI) listCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list <input.csv>",
		Short: "Print the rows of a CSV file as name=value pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if err := validateInputPath(input); err != nil {
				return err
			}
			t, err := table.Load(input)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("loaded table", "rows", t.RowCount(), "columns", t.ColumnCount())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render(input))
			printKeyValue(out, "rows", strconv.Itoa(t.RowCount()))
			printKeyValue(out, "columns", strings.Join(t.ColumnNames(), ", "))
			printRows(out, t, limit)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "print at most n rows (0 for all)")
	cmd.ValidArgsFunction = completeFileExt(1, "csv")

	return cmd
}
