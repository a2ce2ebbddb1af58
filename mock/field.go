package mock

import (
	"context"

	insideideo "github.com/niravbeni/inside-ideo"
)

var _ insideideo.FieldService = (*FieldService)(nil)

// FieldService is a mock implementation of insideideo.FieldService.
type FieldService struct {
	CreateFieldsFn        func(ctx context.Context, sessionID string, fields []*insideideo.Field) error
	FindFieldsBySessionFn func(ctx context.Context, sessionID string) ([]*insideideo.Field, error)
	SetTextFn             func(ctx context.Context, sessionID, name, value string) error
	SetListFn             func(ctx context.Context, sessionID, name, rawText string) error
	ResetFieldFn          func(ctx context.Context, sessionID, name string) error
	ResetAllFn            func(ctx context.Context, sessionID string) error
}

func (s *FieldService) CreateFields(ctx context.Context, sessionID string, fields []*insideideo.Field) error {
	return s.CreateFieldsFn(ctx, sessionID, fields)
}

func (s *FieldService) FindFieldsBySession(ctx context.Context, sessionID string) ([]*insideideo.Field, error) {
	return s.FindFieldsBySessionFn(ctx, sessionID)
}

func (s *FieldService) SetText(ctx context.Context, sessionID, name, value string) error {
	return s.SetTextFn(ctx, sessionID, name, value)
}

func (s *FieldService) SetList(ctx context.Context, sessionID, name, rawText string) error {
	return s.SetListFn(ctx, sessionID, name, rawText)
}

func (s *FieldService) ResetField(ctx context.Context, sessionID, name string) error {
	return s.ResetFieldFn(ctx, sessionID, name)
}

func (s *FieldService) ResetAll(ctx context.Context, sessionID string) error {
	return s.ResetAllFn(ctx, sessionID)
}
