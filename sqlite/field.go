package sqlite

import (
	"context"
	"database/sql"

	insideideo "github.com/niravbeni/inside-ideo"
)

// Compile-time interface verification.
var _ insideideo.FieldService = (*FieldService)(nil)

// FieldService implements insideideo.FieldService using SQLite.
//
// The original column is written once at creation time and never updated
// afterward; edits and resets only touch the edited column.
type FieldService struct {
	db *DB
}

// NewFieldService creates a new FieldService.
func NewFieldService(db *DB) *FieldService {
	return &FieldService{db: db}
}

// CreateFields stores the decoded structured data for a session. The
// edited value starts as a copy of the original.
func (s *FieldService) CreateFields(ctx context.Context, sessionID string, fields []*insideideo.Field) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, field := range fields {
		if err := field.Validate(); err != nil {
			return err
		}
		field.SessionID = sessionID

		original, err := encodeValue(field.Original)
		if err != nil {
			return err
		}
		edited, err := encodeValue(field.Edited)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO fields (session_id, name, kind, original, edited, position)
			VALUES (?, ?, ?, ?, ?, ?)
		`, sessionID, field.Name, string(field.Kind), original, edited, field.Position); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindFieldsBySession retrieves a session's fields in position order.
func (s *FieldService) FindFieldsBySession(ctx context.Context, sessionID string) ([]*insideideo.Field, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, name, kind, original, edited, position
		FROM fields
		WHERE session_id = ?
		ORDER BY position
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []*insideideo.Field
	for rows.Next() {
		var field insideideo.Field
		var kind, original, edited string
		if err := rows.Scan(&field.SessionID, &field.Name, &kind, &original, &edited, &field.Position); err != nil {
			return nil, err
		}
		field.Kind = insideideo.FieldKind(kind)
		if field.Original, err = decodeValue(original); err != nil {
			return nil, err
		}
		if field.Edited, err = decodeValue(edited); err != nil {
			return nil, err
		}
		fields = append(fields, &field)
	}
	return fields, rows.Err()
}

// SetText overwrites the edited value of a text or multiline field.
// Unknown field names are a no-op.
func (s *FieldService) SetText(ctx context.Context, sessionID, name, value string) error {
	kind, ok, err := s.fieldKind(ctx, sessionID, name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if kind == insideideo.KindList {
		return insideideo.Errorf(insideideo.EINVALID, "field %q is a list field, use SetList", name)
	}
	return s.updateEdited(ctx, sessionID, name, insideideo.FieldValue{Text: value})
}

// SetList overwrites the edited value of a list field from raw text.
// Unknown field names are a no-op.
func (s *FieldService) SetList(ctx context.Context, sessionID, name, rawText string) error {
	kind, ok, err := s.fieldKind(ctx, sessionID, name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if kind != insideideo.KindList {
		return insideideo.Errorf(insideideo.EINVALID, "field %q is not a list field, use SetText", name)
	}
	return s.updateEdited(ctx, sessionID, name, insideideo.FieldValue{List: insideideo.SplitLines(rawText)})
}

// ResetField restores a field's edited value from its original.
// Unknown field names are a no-op.
func (s *FieldService) ResetField(ctx context.Context, sessionID, name string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE fields SET edited = original WHERE session_id = ? AND name = ?
	`, sessionID, name)
	return err
}

// ResetAll restores every field's edited value from its original.
func (s *FieldService) ResetAll(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE fields SET edited = original WHERE session_id = ?
	`, sessionID)
	return err
}

// fieldKind looks up a field's kind. The second return value reports
// whether the field exists.
func (s *FieldService) fieldKind(ctx context.Context, sessionID, name string) (insideideo.FieldKind, bool, error) {
	var kind string
	err := s.db.QueryRowContext(ctx, `
		SELECT kind FROM fields WHERE session_id = ? AND name = ?
	`, sessionID, name).Scan(&kind)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return insideideo.FieldKind(kind), true, nil
}

func (s *FieldService) updateEdited(ctx context.Context, sessionID, name string, value insideideo.FieldValue) error {
	edited, err := encodeValue(value)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		UPDATE fields SET edited = ? WHERE session_id = ? AND name = ?
	`, edited, sessionID, name)
	return err
}
