package mock

import (
	"context"
	"encoding/json"

	insideideo "github.com/niravbeni/inside-ideo"
)

var _ insideideo.Processor = (*Processor)(nil)

// Processor is a mock implementation of insideideo.Processor.
type Processor struct {
	ProcessPDFsFn   func(ctx context.Context, req insideideo.ProcessRequest) (*insideideo.ProcessResult, error)
	DefaultPromptFn func(ctx context.Context) (string, error)
	DefaultSchemaFn func(ctx context.Context) (json.RawMessage, error)
}

func (p *Processor) ProcessPDFs(ctx context.Context, req insideideo.ProcessRequest) (*insideideo.ProcessResult, error) {
	return p.ProcessPDFsFn(ctx, req)
}

func (p *Processor) DefaultPrompt(ctx context.Context) (string, error) {
	return p.DefaultPromptFn(ctx)
}

func (p *Processor) DefaultSchema(ctx context.Context) (json.RawMessage, error) {
	return p.DefaultSchemaFn(ctx)
}
