package sqlite_test

import (
	"context"
	"testing"

	insideideo "github.com/niravbeni/inside-ideo"
	"github.com/niravbeni/inside-ideo/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_CreateSession(t *testing.T) {
	t.Parallel()

	t.Run("creates session with generated ID and timestamps", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		session := &insideideo.Session{
			Name:       "q3-report",
			SourcePDFs: []string{"a.pdf", "b.pdf"},
			Prompt:     "Extract key findings.",
			Timings:    &insideideo.Timings{Extraction: 1.5, Analysis: 4.2, Total: 5.7},
		}

		err := svc.CreateSession(ctx, session)
		require.NoError(t, err)

		assert.NotEmpty(t, session.ID, "ID should be generated")
		assert.False(t, session.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.False(t, session.UpdatedAt.IsZero(), "UpdatedAt should be set")
	})

	t.Run("returns error for invalid session", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)

		err := svc.CreateSession(context.Background(), &insideideo.Session{})
		require.Error(t, err)
		assert.Equal(t, insideideo.EINVALID, insideideo.ErrorCode(err))
	})
}

func TestSessionService_FindSessionByID(t *testing.T) {
	t.Parallel()

	t.Run("returns session when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		session := &insideideo.Session{
			Name:       "case-study",
			SourcePDFs: []string{"first.pdf", "second.pdf"},
			Prompt:     "Summarize.",
			Timings:    &insideideo.Timings{OCR: 2.1, Total: 9.9},
		}
		require.NoError(t, svc.CreateSession(ctx, session))

		found, err := svc.FindSessionByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session.ID, found.ID)
		assert.Equal(t, session.Name, found.Name)
		assert.Equal(t, []string{"first.pdf", "second.pdf"}, found.SourcePDFs)
		assert.Equal(t, session.Prompt, found.Prompt)
		require.NotNil(t, found.Timings)
		assert.Equal(t, 2.1, found.Timings.OCR)
		assert.Equal(t, 9.9, found.Timings.Total)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)

		_, err := svc.FindSessionByID(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.Equal(t, insideideo.ENOTFOUND, insideideo.ErrorCode(err))
	})
}

func TestSessionService_FindSessions(t *testing.T) {
	t.Parallel()

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		for _, name := range []string{"alpha", "beta"} {
			require.NoError(t, svc.CreateSession(ctx, &insideideo.Session{
				Name:       name,
				SourcePDFs: []string{name + ".pdf"},
			}))
		}

		name := "beta"
		sessions, err := svc.FindSessions(ctx, insideideo.SessionFilter{Name: &name})
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, "beta", sessions[0].Name)
	})

	t.Run("applies pagination", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		for _, name := range []string{"one", "two", "three"} {
			require.NoError(t, svc.CreateSession(ctx, &insideideo.Session{
				Name:       name,
				SourcePDFs: []string{name + ".pdf"},
			}))
		}

		sessions, err := svc.FindSessions(ctx, insideideo.SessionFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, sessions, 2)
	})

	t.Run("returns empty result for no matches", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)

		name := "missing"
		sessions, err := svc.FindSessions(context.Background(), insideideo.SessionFilter{Name: &name})
		require.NoError(t, err)
		assert.Empty(t, sessions)
	})
}

func TestSessionService_DeleteSession(t *testing.T) {
	t.Parallel()

	t.Run("deletes session and cascades to fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		fields := sqlite.NewFieldService(db)
		ctx := context.Background()

		session := createTestSession(t, db)
		require.NoError(t, fields.CreateFields(ctx, session.ID, []*insideideo.Field{
			{Name: "title", Kind: insideideo.KindText, Original: insideideo.FieldValue{Text: "t"}, Edited: insideideo.FieldValue{Text: "t"}},
		}))

		require.NoError(t, svc.DeleteSession(ctx, session.ID))

		_, err := svc.FindSessionByID(ctx, session.ID)
		assert.Equal(t, insideideo.ENOTFOUND, insideideo.ErrorCode(err))

		remaining, err := fields.FindFieldsBySession(ctx, session.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("returns ENOTFOUND for unknown session", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)

		err := svc.DeleteSession(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.Equal(t, insideideo.ENOTFOUND, insideideo.ErrorCode(err))
	})
}
