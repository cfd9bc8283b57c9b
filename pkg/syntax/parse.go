package syntax

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	"gitlab.com/tozd/go/errors"
)

// ErrParse is returned when tree-sitter produces no tree.
var ErrParse = errors.Base("failed to parse source")

// Parse parses src with the grammar for lang.
// The caller owns the returned tree and must Close it.
func Parse(lang Language, src []byte) (*Tree, error) {
	grammar := lang.Grammar()
	if grammar == nil {
		return nil, &UnsupportedLanguageError{Name: string(lang)}
	}

	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(grammar); err != nil {
		return nil, errors.Errorf("set language %s: %w", lang, err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, errors.WithDetails(ErrParse, "language", string(lang))
	}
	return tree, nil
}
