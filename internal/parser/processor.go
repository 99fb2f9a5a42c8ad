package parser

import (
	"github.com/funvibe/minijava/internal/lexer"
	"github.com/funvibe/minijava/internal/pipeline"
)

// Processor is the parse stage: source text in, AST out.
type Processor struct{}

func (pp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := lexer.New(ctx.Source)
	p := New(l)

	program := p.ParseProgram()
	program.File = ctx.FilePath
	ctx.AstRoot = program

	for _, err := range p.Errors() {
		if err.File == "" {
			err.File = ctx.FilePath
		}
		ctx.Errors = append(ctx.Errors, err)
	}
	return ctx
}
