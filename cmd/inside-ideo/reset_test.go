package main_test

import (
	"context"
	"testing"

	insideideo "github.com/niravbeni/inside-ideo"
	main "github.com/niravbeni/inside-ideo/cmd/inside-ideo"
	"github.com/niravbeni/inside-ideo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("resets a single field", func(t *testing.T) {
		t.Parallel()

		var resetName string
		deps, stdout, _ := testDeps()
		deps.Sessions = sessionByName(&insideideo.Session{ID: "s1", Name: "case-study"})
		deps.Fields = &mock.FieldService{
			ResetFieldFn: func(_ context.Context, _, name string) error {
				resetName = name
				return nil
			},
		}

		cmd := &main.ResetCmd{Name: "case-study", Field: "title"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "title", resetName)
		assert.Contains(t, stdout.String(), "Reset title")
	})

	t.Run("resets all fields with --all", func(t *testing.T) {
		t.Parallel()

		resetAllCalled := false
		deps, stdout, _ := testDeps()
		deps.Sessions = sessionByName(&insideideo.Session{ID: "s1", Name: "case-study"})
		deps.Fields = &mock.FieldService{
			ResetAllFn: func(_ context.Context, _ string) error {
				resetAllCalled = true
				return nil
			},
		}

		cmd := &main.ResetCmd{Name: "case-study", All: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.True(t, resetAllCalled)
		assert.Contains(t, stdout.String(), "Reset all")
	})

	t.Run("requires a field or --all", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Sessions = sessionByName(&insideideo.Session{ID: "s1", Name: "case-study"})

		cmd := &main.ResetCmd{Name: "case-study"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, insideideo.EINVALID, insideideo.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--all")
	})
}
