package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/stackwatch/checkstack/internal/version"
)

// newVersionCommand creates the version command. Version output is not a
// check result, so it exits 0.
func newVersionCommand(exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show checkstack version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			*exitCode = 0
			return displayVersionInformation(cmd.OutOrStdout())
		},
	}
}

func displayVersionInformation(out io.Writer) error {
	fmt.Fprintf(out, "checkstack version %s\n", version.Version)

	if version.Commit != "" {
		fmt.Fprintf(out, "Commit: %s\n", version.Commit)
	}

	if version.BuildDate != "" {
		fmt.Fprintf(out, "Built: %s\n", version.BuildDate)
	}

	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())

	return nil
}
