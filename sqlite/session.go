package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	insideideo "github.com/niravbeni/inside-ideo"
)

// Compile-time interface verification.
var _ insideideo.SessionService = (*SessionService)(nil)

// SessionService implements insideideo.SessionService using SQLite.
type SessionService struct {
	db *DB
}

// NewSessionService creates a new SessionService.
func NewSessionService(db *DB) *SessionService {
	return &SessionService{db: db}
}

// CreateSession creates a new session.
func (s *SessionService) CreateSession(ctx context.Context, session *insideideo.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	session.ID = uuid.New().String()
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	timings := ""
	if session.Timings != nil {
		data, err := json.Marshal(session.Timings)
		if err != nil {
			return fmt.Errorf("encode timings: %w", err)
		}
		timings = string(data)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, name, source_pdfs, prompt, timings, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, session.ID, session.Name, strings.Join(session.SourcePDFs, "\n"), session.Prompt, timings,
		session.CreatedAt.Format(time.RFC3339), session.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindSessionByID retrieves a session by ID.
func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*insideideo.Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, source_pdfs, prompt, timings, created_at, updated_at
		FROM sessions
		WHERE id = ?
	`, id)

	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, insideideo.Errorf(insideideo.ENOTFOUND, "session not found")
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// FindSessions retrieves sessions matching the filter.
func (s *SessionService) FindSessions(ctx context.Context, filter insideideo.SessionFilter) ([]*insideideo.Session, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source_pdfs, prompt, timings, created_at, updated_at FROM sessions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*insideideo.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// DeleteSession permanently removes a session; fields, pages and images
// are removed by the foreign key cascade.
func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return insideideo.Errorf(insideideo.ENOTFOUND, "session not found")
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanSession reads one session row.
func scanSession(row scanner) (*insideideo.Session, error) {
	var session insideideo.Session
	var sourcePDFs, timings, createdAt, updatedAt string

	err := row.Scan(&session.ID, &session.Name, &sourcePDFs, &session.Prompt, &timings, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if sourcePDFs != "" {
		session.SourcePDFs = strings.Split(sourcePDFs, "\n")
	}
	if timings != "" {
		session.Timings = &insideideo.Timings{}
		if err := json.Unmarshal([]byte(timings), session.Timings); err != nil {
			return nil, fmt.Errorf("decode timings: %w", err)
		}
	}

	if session.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if session.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &session, nil
}
