package config

import (
	"fmt"
	"strings"
)

// TemplateOptions controls starter config generation.
type TemplateOptions struct {
	// Languages get a commented query entry each.
	Languages []string

	// IndentStyle and Cpl fill the defaults section when set.
	IndentStyle string
	Cpl         uint
}

// GenerateTemplate returns a commented starter configuration.
func GenerateTemplate(opts TemplateOptions) []byte {
	var b strings.Builder

	b.WriteString("# cookfmt configuration\n\n")
	b.WriteString("# Language used when detection fails.\n")
	b.WriteString("# language: rust\n\n")

	b.WriteString("# Query file per language, relative to this file.\n")
	b.WriteString("queries:\n")
	if len(opts.Languages) == 0 {
		b.WriteString("  # rust: queries/rust.scm\n")
	}
	for _, lang := range opts.Languages {
		fmt.Fprintf(&b, "  %s: queries/%s.scm\n", lang, lang)
	}
	b.WriteString("\n")

	b.WriteString("# Extension overrides.\n")
	b.WriteString("# extensions:\n")
	b.WriteString("#   .h: c\n\n")

	b.WriteString("# Files and directories to skip.\n")
	b.WriteString("exclude:\n")
	b.WriteString("  - \"vendor/**\"\n")
	b.WriteString("  - \"target/**\"\n\n")

	b.WriteString("# Global settings applied before any query.\n")
	b.WriteString("defaults:\n")
	if opts.IndentStyle != "" {
		fmt.Fprintf(&b, "  indent_style: %q\n", opts.IndentStyle)
	} else {
		b.WriteString("  # indent_style: \"    \"\n")
	}
	if opts.Cpl != 0 {
		fmt.Fprintf(&b, "  cpl: %d\n", opts.Cpl)
	} else {
		b.WriteString("  # cpl: 100\n")
	}

	return []byte(b.String())
}
