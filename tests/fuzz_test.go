package tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/funvibe/minijava/internal/analyzer"
	"github.com/funvibe/minijava/internal/parser"
	"github.com/funvibe/minijava/internal/pipeline"
)

// FuzzCheck feeds arbitrary source through the whole pipeline. Any
// input may produce diagnostics, but none may panic or report a
// diagnostic without a position.
func FuzzCheck(f *testing.F) {
	seeds, _ := filepath.Glob(filepath.Join("testdata", "*.mj"))
	for _, seed := range seeds {
		data, err := os.ReadFile(seed)
		if err != nil {
			f.Fatal(err)
		}
		f.Add(string(data))
	}
	f.Add("class A extends A { }")
	f.Add("class A { public int m( { return; } }")
	f.Add("\x00\xff class")

	f.Fuzz(func(t *testing.T, source string) {
		ctx := pipeline.NewContext("fuzz.mj", source)
		ctx = pipeline.New(&parser.Processor{}, &analyzer.Processor{}).Run(ctx)

		for _, d := range ctx.Errors {
			if d.Token.Line < 1 || d.Token.Column < 1 {
				t.Errorf("diagnostic without a position: %s", d.Error())
			}
		}
	})
}
