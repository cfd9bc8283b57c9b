package syntax

import (
	"fmt"
	"slices"
	"strings"
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_bash "github.com/tree-sitter/tree-sitter-bash/bindings/go"
	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	"gitlab.com/tozd/go/errors"
)

// Language identifies a grammar supported by the formatter.
type Language string

// Supported languages.
const (
	Bash       Language = "bash"
	C          Language = "c"
	Cpp        Language = "cpp"
	Go         Language = "go"
	HTML       Language = "html"
	Java       Language = "java"
	JavaScript Language = "javascript"
	Python     Language = "python"
	Rust       Language = "rust"
)

// ErrLanguageUnsupported matches any UnsupportedLanguageError.
var ErrLanguageUnsupported = errors.Base("language is unsupported")

// UnsupportedLanguageError reports a language name that maps to no grammar.
type UnsupportedLanguageError struct {
	Name string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("language %q is unsupported", e.Name)
}

// Is reports whether target is ErrLanguageUnsupported.
func (e *UnsupportedLanguageError) Is(target error) bool {
	return target == ErrLanguageUnsupported
}

type grammar struct {
	load func() unsafe.Pointer
	// linguist is the name go-enry reports for this language.
	linguist string
	// aliases are extra accepted spellings of the name.
	aliases []string
}

//nolint:gochecknoglobals // Static grammar table.
var grammars = map[Language]grammar{
	Bash:       {load: tree_sitter_bash.Language, linguist: "Shell", aliases: []string{"sh", "shell"}},
	C:          {load: tree_sitter_c.Language, linguist: "C"},
	Cpp:        {load: tree_sitter_cpp.Language, linguist: "C++", aliases: []string{"c++"}},
	Go:         {load: tree_sitter_go.Language, linguist: "Go", aliases: []string{"golang"}},
	HTML:       {load: tree_sitter_html.Language, linguist: "HTML"},
	Java:       {load: tree_sitter_java.Language, linguist: "Java"},
	JavaScript: {load: tree_sitter_javascript.Language, linguist: "JavaScript", aliases: []string{"js"}},
	Python:     {load: tree_sitter_python.Language, linguist: "Python", aliases: []string{"py"}},
	Rust:       {load: tree_sitter_rust.Language, linguist: "Rust", aliases: []string{"rs"}},
}

// Grammar returns the tree-sitter language for l.
func (l Language) Grammar() *tree_sitter.Language {
	g, ok := grammars[l]
	if !ok {
		return nil
	}
	return tree_sitter.NewLanguage(g.load())
}

// String implements fmt.Stringer.
func (l Language) String() string {
	return string(l)
}

// ParseLanguage resolves a user-supplied language name.
// Matching is case-insensitive and accepts common aliases.
func ParseLanguage(name string) (Language, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if _, ok := grammars[Language(key)]; ok {
		return Language(key), nil
	}
	for lang, g := range grammars {
		if slices.Contains(g.aliases, key) {
			return lang, nil
		}
	}
	return "", &UnsupportedLanguageError{Name: name}
}

// Linguist returns the go-enry name of l.
func (l Language) Linguist() string {
	return grammars[l].linguist
}

// FromLinguist maps a go-enry language name to a supported language.
func FromLinguist(name string) (Language, bool) {
	for lang, g := range grammars {
		if g.linguist == name {
			return lang, true
		}
	}
	return "", false
}

// Languages returns all supported languages in sorted order.
func Languages() []Language {
	langs := make([]Language, 0, len(grammars))
	for lang := range grammars {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}
