package mock

import (
	"context"

	insideideo "github.com/niravbeni/inside-ideo"
)

var _ insideideo.PageImageFetcher = (*PageImageFetcher)(nil)

// PageImageFetcher is a mock implementation of insideideo.PageImageFetcher.
type PageImageFetcher struct {
	FetchPageImageFn func(ctx context.Context, filename string) (string, error)
}

func (f *PageImageFetcher) FetchPageImage(ctx context.Context, filename string) (string, error) {
	return f.FetchPageImageFn(ctx, filename)
}
