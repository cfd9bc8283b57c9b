// Package langdetect picks the grammar for a source file.
// It uses go-enry to recognize the language from the file name, a shebang
// line, or the content itself, and keeps only languages with a grammar.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// Detect returns the language of a file. filename may be empty when the
// content comes from stdin.
func Detect(filename string, content []byte) (syntax.Language, bool) {
	if filename != "" {
		// Strategy 1: exact file names (Makefile-style) and extensions.
		if lang, ok := single(enry.GetLanguagesByFilename(filename, content, nil)); ok {
			return lang, true
		}
		if lang, ok := single(enry.GetLanguagesByExtension(filename, content, nil)); ok {
			return lang, true
		}
	}

	if len(content) == 0 {
		return "", false
	}

	// Strategy 2: a shebang is the most reliable content signal.
	if name, safe := enry.GetLanguageByShebang(content); safe {
		if lang, ok := syntax.FromLinguist(name); ok {
			return lang, true
		}
	}

	// Strategy 3: patterns that are highly indicative on their own.
	if lang := detectByPattern(content); lang != "" {
		return lang, true
	}

	// Strategy 4: the classifier, restricted to languages we can parse.
	if name, safe := enry.GetLanguageByClassifier(content, candidates()); safe && name != "" {
		return syntax.FromLinguist(name)
	}

	return "", false
}

// single narrows go-enry's guesses to supported languages and succeeds
// only when exactly one remains.
func single(names []string) (syntax.Language, bool) {
	var found syntax.Language
	for _, name := range names {
		lang, ok := syntax.FromLinguist(name)
		if !ok {
			continue
		}
		if found != "" && found != lang {
			return "", false
		}
		found = lang
	}
	return found, found != ""
}

func candidates() []string {
	langs := syntax.Languages()
	names := make([]string, 0, len(langs))
	for _, lang := range langs {
		names = append(names, lang.Linguist())
	}
	return names
}

// detectByPattern checks for language-specific patterns.
func detectByPattern(content []byte) syntax.Language {
	contentStr := string(content)
	trimmed := bytes.TrimSpace(content)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")) && !strings.Contains(contentStr, "class "):
		return syntax.Go
	case isPython(contentStr):
		return syntax.Python
	case isHTML(trimmed):
		return syntax.HTML
	case isRust(contentStr):
		return syntax.Rust
	case strings.Contains(contentStr, "#include <"):
		if strings.Contains(contentStr, "std::") || strings.Contains(contentStr, "class ") {
			return syntax.Cpp
		}
		return syntax.C
	case strings.Contains(contentStr, "public static void main("):
		return syntax.Java
	case isJavaScript(contentStr):
		return syntax.JavaScript
	}
	return ""
}

func isPython(contentStr string) bool {
	// def/class definitions with colon.
	if strings.Contains(contentStr, "def ") && strings.Contains(contentStr, "):") {
		return true
	}
	// Python dunder variables.
	return strings.Contains(contentStr, "__name__") || strings.Contains(contentStr, "__main__")
}

func isHTML(trimmed []byte) bool {
	lower := bytes.ToLower(trimmed)
	return bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<body>"))
}

func isRust(contentStr string) bool {
	return strings.Contains(contentStr, "fn main()") ||
		strings.Contains(contentStr, "println!") ||
		strings.Contains(contentStr, "let mut ")
}

func isJavaScript(contentStr string) bool {
	return strings.Contains(contentStr, "=>") ||
		strings.Contains(contentStr, "console.log") ||
		strings.Contains(contentStr, "function ")
}
