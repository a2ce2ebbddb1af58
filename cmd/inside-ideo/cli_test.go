package main_test

import (
	"bytes"
	"context"

	insideideo "github.com/niravbeni/inside-ideo"
	main "github.com/niravbeni/inside-ideo/cmd/inside-ideo"
	"github.com/niravbeni/inside-ideo/mock"
)

// sessionByName returns a SessionService mock that resolves the given
// session by name and fails ID lookups.
func sessionByName(session *insideideo.Session) *mock.SessionService {
	return &mock.SessionService{
		FindSessionsFn: func(_ context.Context, filter insideideo.SessionFilter) ([]*insideideo.Session, error) {
			if filter.Name != nil && *filter.Name == session.Name {
				return []*insideideo.Session{session}, nil
			}
			return nil, nil
		},
		FindSessionByIDFn: func(_ context.Context, id string) (*insideideo.Session, error) {
			if id == session.ID {
				return session, nil
			}
			return nil, insideideo.Errorf(insideideo.ENOTFOUND, "session not found")
		},
	}
}

// testDeps returns Dependencies wired with buffers for output capture.
func testDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}
	return deps, stdout, stderr
}
