package analyzer

import (
	"github.com/funvibe/minijava/internal/pipeline"
	"github.com/funvibe/minijava/internal/symbols"
)

// Processor is the semantic analysis stage: AST in, annotated AST and
// class table out.
type Processor struct{}

func (ap *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}

	table := symbols.NewTable()
	RegisterBuiltins(table)

	a := New(table)
	for _, err := range a.Analyze(ctx.AstRoot) {
		if err.File == "" {
			err.File = ctx.FilePath
		}
		ctx.Errors = append(ctx.Errors, err)
	}
	ctx.Classes = a.Classes()
	return ctx
}
