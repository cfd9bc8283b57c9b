//go:build stave

package main

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const binary = "bin/cookfmt"

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":    Build,
	"t":    Test.Default,
	"l":    Lint.Default,
	"c":    Check,
	"gold": Test.Golden,
}

// Namespace types group related targets.
type (
	Test st.Namespace
	Lint st.Namespace
	CI   st.Namespace
)

// Build compiles cookfmt with version info when sources changed.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary, "is up to date")
		return nil
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, "./cmd/cookfmt")
}

// Install installs cookfmt to $GOBIN or $GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/cookfmt")
}

// Check runs lint then tests.
func Check() {
	st.SerialDeps(Lint.Default, Test.Default)
}

// Clean removes build and coverage artifacts.
func Clean() error {
	for _, path := range []string{"bin", "coverage.out"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Default runs all tests through gotestsum with the race detector.
func (Test) Default() error {
	n := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go", "tool", "gotestsum", "-f", "pkgname-and-test-fails", "--",
		"-race", "-p", n, "-parallel", n, "-coverprofile=coverage.out", "./...")
}

// Golden regenerates the expected outputs under pkg/cook/testdata.
func (Test) Golden() error {
	return sh.RunV("go", "test", "./pkg/cook/", "-run", "TestGolden", "-update")
}

// Queries runs the built binary over every golden input and prints the
// diffs, as a smoke test of the CLI.
func (Test) Queries() error {
	st.Deps(Build)
	inputs, err := filepath.Glob("pkg/cook/testdata/*/*.input.*")
	if err != nil {
		return fmt.Errorf("glob inputs: %w", err)
	}
	for _, input := range inputs {
		name, _, _ := strings.Cut(filepath.Base(input), ".")
		query := filepath.Join(filepath.Dir(input), name+".scm")
		if err := sh.RunV(binary, "--diff", "-q", query, input); err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
	}
	return nil
}

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// CI runs golangci-lint without auto-fix.
func (Lint) CI() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Gate runs every check CI runs.
func (CI) Gate() {
	st.SerialDeps(Lint.CI, Build, Test.Default, Test.Queries, CI.ModTidy)
}

// ModTidy fails when go mod tidy would change go.mod or go.sum.
func (CI) ModTidy() error {
	read := func() (string, error) {
		mod, err := os.ReadFile("go.mod")
		if err != nil {
			return "", err
		}
		sum, err := os.ReadFile("go.sum")
		return string(mod) + string(sum), err
	}

	before, err := read()
	if err != nil {
		return err
	}
	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}
	after, err := read()
	if err != nil {
		return err
	}
	if before != after {
		return errors.New("go.mod or go.sum changed after 'go mod tidy'")
	}
	return nil
}

func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

func ldflags() string {
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s",
		cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev"),
		cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none"),
		time.Now().UTC().Format(time.RFC3339),
	)
}
