package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/internal/logging"
	"github.com/yaklabco/cookfmt/pkg/config"
	"github.com/yaklabco/cookfmt/pkg/settings"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// defaultConfigName is the file written by init.
const defaultConfigName = ".cookfmt.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force       bool
	output      string
	languages   []string
	indentStyle string
	cpl         uint
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new cookfmt configuration file",
		Long: `Create a new .cookfmt.yml configuration file in the current directory.

Examples:
  cookfmt init                          Create a commented .cookfmt.yml
  cookfmt init --languages rust,go      Add query entries for Rust and Go
  cookfmt init --indent-style "  "      Seed the default indent unit
  cookfmt init --output custom.yml      Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigName, "output file path")
	cmd.Flags().StringSliceVar(&flags.languages, "languages", nil, "languages to add query entries for")
	cmd.Flags().StringVar(&flags.indentStyle, "indent-style", "", "default indentation unit")
	cmd.Flags().UintVar(&flags.cpl, "cpl", 0, "default characters-per-line limit")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.Default()

	langs := make([]string, 0, len(flags.languages))
	for _, name := range flags.languages {
		lang, err := syntax.ParseLanguage(name)
		if err != nil {
			return err
		}
		langs = append(langs, lang.String())
	}
	if _, err := settings.NewCpl(flags.cpl); err != nil {
		return errors.Errorf("invalid --cpl: %w", err)
	}

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return errors.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return errors.Errorf("file %q already exists; use --force to overwrite", flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	content := config.GenerateTemplate(config.TemplateOptions{
		Languages:   langs,
		IndentStyle: flags.indentStyle,
		Cpl:         flags.cpl,
	})

	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return errors.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	cmd.Println("run 'cookfmt languages' to see the supported languages")

	return nil
}
