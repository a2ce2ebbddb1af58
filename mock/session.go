package mock

import (
	"context"

	insideideo "github.com/niravbeni/inside-ideo"
)

var _ insideideo.SessionService = (*SessionService)(nil)

// SessionService is a mock implementation of insideideo.SessionService.
type SessionService struct {
	CreateSessionFn   func(ctx context.Context, session *insideideo.Session) error
	FindSessionByIDFn func(ctx context.Context, id string) (*insideideo.Session, error)
	FindSessionsFn    func(ctx context.Context, filter insideideo.SessionFilter) ([]*insideideo.Session, error)
	DeleteSessionFn   func(ctx context.Context, id string) error
}

func (s *SessionService) CreateSession(ctx context.Context, session *insideideo.Session) error {
	return s.CreateSessionFn(ctx, session)
}

func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*insideideo.Session, error) {
	return s.FindSessionByIDFn(ctx, id)
}

func (s *SessionService) FindSessions(ctx context.Context, filter insideideo.SessionFilter) ([]*insideideo.Session, error) {
	return s.FindSessionsFn(ctx, filter)
}

func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	return s.DeleteSessionFn(ctx, id)
}
