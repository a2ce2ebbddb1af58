package insideideo_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	insideideo "github.com/niravbeni/inside-ideo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPDF(t *testing.T, dir, name string, size int) string {
	t.Helper()
	data := append([]byte("%PDF-1.7\n"), make([]byte, size)...)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestUploadPolicy_ValidateFiles(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid PDFs", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		a := writeTestPDF(t, dir, "a.pdf", 100)
		b := writeTestPDF(t, dir, "b.pdf", 200)

		files, err := insideideo.DefaultUploadPolicy().ValidateFiles([]string{a, b})
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, "a.pdf", files[0].Name)
		assert.Equal(t, int64(109), files[0].Size)
	})

	t.Run("rejects empty selection", func(t *testing.T) {
		t.Parallel()

		_, err := insideideo.DefaultUploadPolicy().ValidateFiles(nil)
		require.Error(t, err)
		assert.Equal(t, insideideo.EINVALID, insideideo.ErrorCode(err))
	})

	t.Run("rejects too many files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var paths []string
		for i := 0; i < insideideo.DefaultMaxFiles+1; i++ {
			paths = append(paths, writeTestPDF(t, dir, fmt.Sprintf("file-%d.pdf", i), 10))
		}

		_, err := insideideo.DefaultUploadPolicy().ValidateFiles(paths)
		require.Error(t, err)
		assert.Equal(t, insideideo.EINVALID, insideideo.ErrorCode(err))
		assert.Contains(t, insideideo.ErrorMessage(err), "too many files")
	})

	t.Run("rejects missing file", func(t *testing.T) {
		t.Parallel()

		_, err := insideideo.DefaultUploadPolicy().ValidateFiles([]string{"/nonexistent/file.pdf"})
		require.Error(t, err)
		assert.Equal(t, insideideo.EINVALID, insideideo.ErrorCode(err))
	})

	t.Run("rejects non-pdf extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7"), 0644))

		_, err := insideideo.DefaultUploadPolicy().ValidateFiles([]string{path})
		require.Error(t, err)
		assert.Equal(t, insideideo.EINVALID, insideideo.ErrorCode(err))
	})

	t.Run("rejects wrong magic header", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "fake.pdf")
		require.NoError(t, os.WriteFile(path, []byte("<html>not a pdf</html>"), 0644))

		_, err := insideideo.DefaultUploadPolicy().ValidateFiles([]string{path})
		require.Error(t, err)
		assert.Equal(t, insideideo.EINVALID, insideideo.ErrorCode(err))
		assert.Contains(t, insideideo.ErrorMessage(err), "not a valid PDF")
	})

	t.Run("rejects empty file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "empty.pdf")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		_, err := insideideo.DefaultUploadPolicy().ValidateFiles([]string{path})
		require.Error(t, err)
		assert.Equal(t, insideideo.EINVALID, insideideo.ErrorCode(err))
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeTestPDF(t, dir, "big.pdf", 100)

		policy := insideideo.UploadPolicy{MaxFiles: 5, MaxFileSize: 50}
		_, err := policy.ValidateFiles([]string{path})
		require.Error(t, err)
		assert.Equal(t, insideideo.EINVALID, insideideo.ErrorCode(err))
		assert.Contains(t, insideideo.ErrorMessage(err), "too large")
	})

	t.Run("partial failure uploads nothing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		good := writeTestPDF(t, dir, "good.pdf", 10)
		bad := filepath.Join(dir, "missing.pdf")

		files, err := insideideo.DefaultUploadPolicy().ValidateFiles([]string{good, bad})
		require.Error(t, err)
		assert.Nil(t, files)
	})

	t.Run("misconfigured policy rejected", func(t *testing.T) {
		t.Parallel()

		policy := insideideo.UploadPolicy{MaxFiles: 0, MaxFileSize: 0}
		_, err := policy.ValidateFiles([]string{"a.pdf"})
		require.Error(t, err)
	})
}
