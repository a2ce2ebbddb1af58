// Package slog provides logging decorators for inside-ideo services
// using the standard library's structured logger.
package slog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	insideideo "github.com/niravbeni/inside-ideo"
)

// Ensure LoggingProcessor implements insideideo.Processor.
var _ insideideo.Processor = (*LoggingProcessor)(nil)

// LoggingProcessor wraps a Processor with operation logging.
type LoggingProcessor struct {
	next   insideideo.Processor
	logger *slog.Logger
}

// NewLoggingProcessor creates a new LoggingProcessor.
func NewLoggingProcessor(next insideideo.Processor, logger *slog.Logger) *LoggingProcessor {
	return &LoggingProcessor{next: next, logger: logger}
}

// ProcessPDFs delegates to the wrapped processor and logs the submission.
func (p *LoggingProcessor) ProcessPDFs(ctx context.Context, req insideideo.ProcessRequest) (result *insideideo.ProcessResult, err error) {
	defer func(begin time.Time) {
		images, pages := 0, 0
		if result != nil {
			images = len(result.Images)
			pages = len(result.Pages)
		}
		p.logger.Info("process pdfs",
			"files", len(req.Files),
			"images", images,
			"pages", pages,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ProcessPDFs(ctx, req)
}

// DefaultPrompt delegates to the wrapped processor and logs the call.
func (p *LoggingProcessor) DefaultPrompt(ctx context.Context) (prompt string, err error) {
	defer func(begin time.Time) {
		p.logger.Info("default prompt",
			"bytes", len(prompt),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.DefaultPrompt(ctx)
}

// DefaultSchema delegates to the wrapped processor and logs the call.
func (p *LoggingProcessor) DefaultSchema(ctx context.Context) (schema json.RawMessage, err error) {
	defer func(begin time.Time) {
		p.logger.Info("default schema",
			"bytes", len(schema),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.DefaultSchema(ctx)
}
