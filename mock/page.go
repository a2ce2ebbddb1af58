package mock

import (
	"context"

	insideideo "github.com/niravbeni/inside-ideo"
)

var _ insideideo.PageService = (*PageService)(nil)

// PageService is a mock implementation of insideideo.PageService.
type PageService struct {
	CreatePagesFn        func(ctx context.Context, sessionID string, pages []*insideideo.PageRender) error
	FindPagesBySessionFn func(ctx context.Context, sessionID string) ([]*insideideo.PageRender, error)
	SavePageImageFn      func(ctx context.Context, sessionID, filename, imageData, contentHash string) error
}

func (s *PageService) CreatePages(ctx context.Context, sessionID string, pages []*insideideo.PageRender) error {
	return s.CreatePagesFn(ctx, sessionID, pages)
}

func (s *PageService) FindPagesBySession(ctx context.Context, sessionID string) ([]*insideideo.PageRender, error) {
	return s.FindPagesBySessionFn(ctx, sessionID)
}

func (s *PageService) SavePageImage(ctx context.Context, sessionID, filename, imageData, contentHash string) error {
	return s.SavePageImageFn(ctx, sessionID, filename, imageData, contentHash)
}
