package slog

import (
	"context"
	"log/slog"
	"time"

	insideideo "github.com/niravbeni/inside-ideo"
)

// Ensure LoggingPageFetcher implements insideideo.PageImageFetcher.
var _ insideideo.PageImageFetcher = (*LoggingPageFetcher)(nil)

// LoggingPageFetcher wraps a PageImageFetcher with per-fetch logging.
type LoggingPageFetcher struct {
	next   insideideo.PageImageFetcher
	logger *slog.Logger
}

// NewLoggingPageFetcher creates a new LoggingPageFetcher.
func NewLoggingPageFetcher(next insideideo.PageImageFetcher, logger *slog.Logger) *LoggingPageFetcher {
	return &LoggingPageFetcher{next: next, logger: logger}
}

// FetchPageImage delegates to the wrapped fetcher and logs the fetch.
func (f *LoggingPageFetcher) FetchPageImage(ctx context.Context, filename string) (dataURL string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch page image",
			"filename", filename,
			"bytes", len(dataURL),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchPageImage(ctx, filename)
}
