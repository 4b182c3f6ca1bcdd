package lexer

import (
	"github.com/treewright/treewright/internal/diagnostics"
	"github.com/treewright/treewright/internal/pipeline"
	"github.com/treewright/treewright/internal/token"
)

// Processor is the lexing pipeline stage: it tokenizes the whole input
// and turns ILLEGAL tokens into diagnostics.
type Processor struct{}

func (lp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			code := diagnostics.ErrL002
			msg, _ := tok.Literal.(string)
			switch {
			case msg == "unterminated string literal" || msg == "unterminated character literal":
				code = diagnostics.ErrL001
			case len(msg) >= 9 && msg[:9] == "malformed":
				code = diagnostics.ErrL003
			}
			err := diagnostics.NewError(code, tok, msg)
			err.File = ctx.FilePath
			ctx.Errors = append(ctx.Errors, err)
			continue
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	ctx.TokenStream = token.NewStream(tokens)
	return ctx
}
