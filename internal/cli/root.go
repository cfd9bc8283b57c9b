// Package cli provides the Cobra command structure for cookfmt.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cookfmt/internal/logging"
)

// envLogLevel sets the log level when --debug is absent.
const envLogLevel = "COOKFMT_LOG_LEVEL"

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root cookfmt command with all subcommands.
// The root command itself formats sources.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	flags := &formatFlags{}

	rootCmd := &cobra.Command{
		Use:   "cookfmt [flags] [paths...]",
		Short: "Query-driven source formatter built on tree-sitter",
		Long: `cookfmt rewrites source code by running a tree-sitter query whose
#set! properties and predicates (indent!, space!, space-all!, ...) describe
how matched nodes should be laid out.

With no paths, the source is read from standard input and the result is
written to standard output. Directories are walked recursively and every file
with a configured query is formatted.

Examples:
  cookfmt -l rust -q rust.scm < main.rs   Format standard input
  cookfmt -q rust.scm src/main.rs         Print the formatted file
  cookfmt -w src/                         Rewrite files in place
  cookfmt --diff src/                     Show what would change
  cookfmt --check .                       Fail if anything would change`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			switch {
			case debug:
				logging.SetLevel("debug")
			case os.Getenv(envLogLevel) != "":
				logging.SetLevel(os.Getenv(envLogLevel))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, flags)
		},
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	addFormatFlags(rootCmd, flags)

	rootCmd.AddCommand(newVersionCommand(info))
	rootCmd.AddCommand(newLanguagesCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}
