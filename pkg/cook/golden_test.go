package cook_test

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cookfmt/pkg/cook"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// update rewrites golden files instead of comparing.
// Usage: go test ./pkg/cook/... -run TestGolden -update.
var update = flag.Bool("update", false, "update golden files")

// goldenCase is one testdata/<language>/<name>.input.<ext> file together
// with its <name>.scm query and <name>.golden.<ext> expectation.
type goldenCase struct {
	Name       string
	Language   syntax.Language
	InputPath  string
	QueryPath  string
	GoldenPath string
}

func testdataDir(t *testing.T) string {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to get test file path")
	}

	return filepath.Join(filepath.Dir(filename), "testdata")
}

func discoverGoldenCases(t *testing.T, baseDir string) []goldenCase {
	t.Helper()

	entries, err := os.ReadDir(baseDir)
	require.NoError(t, err)

	var cases []goldenCase
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		lang, err := syntax.ParseLanguage(entry.Name())
		require.NoError(t, err, "testdata directory %q is not a language", entry.Name())

		dir := filepath.Join(baseDir, entry.Name())
		inputs, err := filepath.Glob(filepath.Join(dir, "*.input.*"))
		require.NoError(t, err)

		for _, input := range inputs {
			base := filepath.Base(input)
			name, ext, _ := strings.Cut(base, ".input")
			cases = append(cases, goldenCase{
				Name:       filepath.Join(entry.Name(), name),
				Language:   lang,
				InputPath:  input,
				QueryPath:  filepath.Join(dir, name+".scm"),
				GoldenPath: filepath.Join(dir, name+".golden"+ext),
			})
		}
	}
	return cases
}

func TestGolden(t *testing.T) {
	cases := discoverGoldenCases(t, testdataDir(t))
	if len(cases) == 0 {
		t.Skip("No golden test cases found. Create testdata/<language>/*.input.* files to add tests.")
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			input, err := os.ReadFile(tc.InputPath)
			require.NoError(t, err)
			query, err := os.ReadFile(tc.QueryPath)
			require.NoError(t, err)

			res, err := cook.Cook(context.Background(), tc.Language, input, string(query), cook.Options{})
			require.NoError(t, err)

			compareWithGolden(t, res.Output, tc.GoldenPath, *update)
		})
	}
}

func compareWithGolden(t *testing.T, actual []byte, goldenPath string, update bool) {
	t.Helper()

	if update {
		require.NoError(t, os.WriteFile(goldenPath, actual, 0o600))
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) {
		t.Errorf("Golden file does not exist: %s\nRun with -update flag to create it.", goldenPath)
		t.Logf("Actual content:\n%s", actual)
		return
	}
	require.NoError(t, err)

	if string(expected) != string(actual) {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(expected), string(actual), false)
		t.Errorf("Output does not match golden file: %s\n%s", goldenPath, dmp.DiffPrettyText(diffs))
	}
}
