package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/oshokin/clean-folder/internal/version"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version, commit and build time.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printVersion(cmd.OutOrStdout())
	},
}

func printVersion(w io.Writer) error {
	_, err := fmt.Fprintln(w, version.Full())

	return err
}
