package analyzer

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// TestGoldenDiagnostics checks whole-file diagnostic output against
// archived expectations. Each testdata archive holds the source under
// "input.mj" and the exact diagnostic lines under "expected".
func TestGoldenDiagnostics(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no golden archives found under testdata")
	}

	for _, file := range files {
		file := file
		t.Run(filepath.Base(file), func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}

			var input, want string
			for _, f := range ar.Files {
				switch f.Name {
				case "input.mj":
					input = string(f.Data)
				case "expected":
					want = string(f.Data)
				}
			}
			if input == "" {
				t.Fatalf("%s has no input.mj section", file)
			}

			_, errs := analyzeSource(t, input)
			var lines []string
			for _, e := range errs {
				lines = append(lines, e.Error())
			}
			got := strings.TrimSpace(strings.Join(lines, "\n"))
			if got != strings.TrimSpace(want) {
				t.Errorf("diagnostics mismatch\ngot:\n%s\nwant:\n%s", got, strings.TrimSpace(want))
			}
		})
	}
}
