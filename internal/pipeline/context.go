package pipeline

import (
	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/symbols"
)

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries the state of one compilation unit between
// stages. Stages append diagnostics and fill in their own outputs.
type PipelineContext struct {
	FilePath string
	Source   string

	AstRoot *ast.Program
	Classes *symbols.Table

	Errors []*diagnostics.DiagnosticError
}

// NewContext creates a context for one source file.
func NewContext(filePath, source string) *PipelineContext {
	return &PipelineContext{FilePath: filePath, Source: source}
}

// HasErrors reports whether any stage recorded a diagnostic.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}
