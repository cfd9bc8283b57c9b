package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cookfmt/internal/ui/pretty"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// languageColumnWidth pads language names in the listing.
const languageColumnWidth = 12

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Long: `List the languages cookfmt can parse, with the name language
detection reports for each.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = pretty.ColorAuto
			}
			out := cmd.OutOrStdout()
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

			for _, lang := range syntax.Languages() {
				name := fmt.Sprintf("%-*s", languageColumnWidth, lang.String())
				if _, err := fmt.Fprintln(out, styles.Bold.Render(name)+styles.Dim.Render(lang.Linguist())); err != nil {
					return fmt.Errorf("write languages: %w", err)
				}
			}
			return nil
		},
	}
}
