// Package pipeline chains the processing stages (lexing, parsing,
// attribution) over a shared context. Stages append diagnostics instead
// of aborting, so one run collects problems from every stage.
package pipeline

import (
	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/internal/diagnostics"
	"github.com/treewright/treewright/internal/token"
)

// PipelineContext carries the evolving state of one source file through
// the stages.
type PipelineContext struct {
	FilePath    string
	SourceCode  string
	TokenStream *token.Stream
	AstRoot     ast.Node
	Errors      []*diagnostics.DiagnosticError
}

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors so later stages can still contribute
		// diagnostics where possible.
	}
	return ctx
}
