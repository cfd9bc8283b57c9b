package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cookfmt/internal/logging"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the version, commit and build date of cookfmt, with the Go
runtime it was built with and the number of grammars compiled in.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			logging.NewWithWriter(cmd.OutOrStdout(), "info").Info("cookfmt",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
				"go", runtime.Version(),
				"grammars", len(syntax.Languages()),
			)
		},
	}
}
