package mock

import (
	"context"

	insideideo "github.com/niravbeni/inside-ideo"
)

var _ insideideo.ImageService = (*ImageService)(nil)

// ImageService is a mock implementation of insideideo.ImageService.
type ImageService struct {
	CreateImagesFn        func(ctx context.Context, sessionID string, images []*insideideo.ExtractedImage) error
	FindImagesBySessionFn func(ctx context.Context, sessionID string) ([]*insideideo.ExtractedImage, error)
}

func (s *ImageService) CreateImages(ctx context.Context, sessionID string, images []*insideideo.ExtractedImage) error {
	return s.CreateImagesFn(ctx, sessionID, images)
}

func (s *ImageService) FindImagesBySession(ctx context.Context, sessionID string) ([]*insideideo.ExtractedImage, error) {
	return s.FindImagesBySessionFn(ctx, sessionID)
}
