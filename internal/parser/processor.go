package parser

import (
	"github.com/treewright/treewright/internal/diagnostics"
	"github.com/treewright/treewright/internal/pipeline"
	"github.com/treewright/treewright/internal/token"
)

// Processor is the parsing pipeline stage.
type Processor struct{}

func (pp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		ctx.Errors = append(ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP000, token.Token{}, "no token stream to parse"))
		return ctx
	}

	p := New(ctx.TokenStream, ctx)
	unit := p.ParseCompilationUnit()
	unit.File = ctx.FilePath
	ctx.AstRoot = unit

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	return ctx
}
