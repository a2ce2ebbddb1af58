package insideideo

import (
	"context"
	"time"
)

// Session represents one processed result: the files that were submitted
// and everything the server returned for them. All editable state is
// scoped to a session; creating a new session discards nothing, sessions
// coexist until deleted.
type Session struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SourcePDFs []string  `json:"sourcePdfs"`
	Prompt     string    `json:"prompt"`
	Timings    *Timings  `json:"timings,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Validate returns an error if the session contains invalid fields.
func (s *Session) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "session name required")
	}
	if len(s.SourcePDFs) == 0 {
		return Errorf(EINVALID, "session source PDFs required")
	}
	return nil
}

// Timings reports how long the server spent on each processing stage,
// in seconds. Stages absent from the response are zero.
type Timings struct {
	Extraction float64 `json:"extraction,omitempty"`
	OCR        float64 `json:"ocr,omitempty"`
	Analysis   float64 `json:"analysis,omitempty"`
	Total      float64 `json:"total,omitempty"`
}

// SessionService represents a service for managing sessions.
type SessionService interface {
	// CreateSession creates a new session.
	CreateSession(ctx context.Context, session *Session) error

	// FindSessionByID retrieves a session by ID.
	// Returns ENOTFOUND if the session does not exist.
	FindSessionByID(ctx context.Context, id string) (*Session, error)

	// FindSessions retrieves sessions matching the filter.
	FindSessions(ctx context.Context, filter SessionFilter) ([]*Session, error)

	// DeleteSession permanently removes a session and all associated
	// fields, pages and images. Returns ENOTFOUND if the session does
	// not exist.
	DeleteSession(ctx context.Context, id string) error
}

// SessionFilter represents a filter for FindSessions.
type SessionFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
