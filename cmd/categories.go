package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oshokin/clean-folder/internal/category"
	"github.com/oshokin/clean-folder/internal/utils"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the categories and the extensions they receive.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printCategories(cmd.OutOrStdout())
	},
}

func printCategories(w io.Writer) error {
	table := category.Table()
	rows := make([][]string, 0, len(table))

	for _, c := range table {
		extensions := strings.Join(c.Extensions, " ")
		if extensions == "" {
			extensions = "everything else"
		}

		rows = append(rows, []string{c.Name.String(), extensions})
	}

	_, err := fmt.Fprintln(w, utils.RenderTable([]string{"Category", "Extensions"}, rows, nil, nil))

	return err
}
