// Package fs writes session exports to the local filesystem with atomic
// semantics: everything is staged in a temporary directory and moved into
// place on Commit.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	insideideo "github.com/niravbeni/inside-ideo"
)

// ExportStore writes a session's edited data and decoded image payloads
// to a directory. Files are staged under dir.tmp and moved to dir on
// Commit; Abort discards the staging directory.
type ExportStore struct {
	baseDir string
	name    string
}

// NewExportStore creates a new ExportStore. baseDir is the parent
// directory, name is the export directory name.
func NewExportStore(baseDir, name string) *ExportStore {
	return &ExportStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *ExportStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ExportStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// WriteFields writes the session's edited structured data as a markdown
// document with YAML frontmatter.
func (s *ExportStore) WriteFields(session *insideideo.Session, fields []*insideideo.Field) error {
	content := FormatFields(session, fields)
	return s.writeFile("structured-data.md", []byte(content))
}

// WriteFieldsJSON writes the edited structured data as a JSON object of
// field name to string or string list, mirroring the server's shape.
func (s *ExportStore) WriteFieldsJSON(fields []*insideideo.Field) error {
	data, err := insideideo.EncodeStructuredData(fields)
	if err != nil {
		return err
	}
	return s.writeFile("structured-data.json", data)
}

// WritePage decodes a loaded page's data URL and writes it under pages/.
// Pages that are still pending are skipped without error.
func (s *ExportStore) WritePage(page *insideideo.PageRender) error {
	if !page.Loaded() {
		return nil
	}
	mediaType, data, err := insideideo.DecodeDataURL(page.ImageData)
	if err != nil {
		return fmt.Errorf("page %s: %w", page.Filename, err)
	}
	return s.writeFile(filepath.Join("pages", exportFilename(page.Filename, mediaType)), data)
}

// WriteImage decodes an extracted image's data URL and writes it under
// images/. Images without a payload are skipped without error.
func (s *ExportStore) WriteImage(img *insideideo.ExtractedImage) error {
	if img.ImageData == "" {
		return nil
	}
	mediaType, data, err := insideideo.DecodeDataURL(img.ImageData)
	if err != nil {
		return fmt.Errorf("image %s: %w", img.Filename, err)
	}
	return s.writeFile(filepath.Join("images", exportFilename(img.Filename, mediaType)), data)
}

// FormatFields formats a session's fields as markdown with YAML
// frontmatter.
func FormatFields(session *insideideo.Session, fields []*insideideo.Field) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("session: ")
	b.WriteString(session.Name)
	b.WriteString("\nsources: ")
	b.WriteString(strings.Join(session.SourcePDFs, ", "))
	b.WriteString("\nexported: ")
	b.WriteString(time.Now().Format("2006-01-02"))
	b.WriteString("\n---\n")

	for _, field := range fields {
		b.WriteString("\n## ")
		b.WriteString(field.Name)
		b.WriteString("\n\n")
		if field.Kind == insideideo.KindList {
			for _, item := range field.Edited.List {
				b.WriteString("- ")
				b.WriteString(item)
				b.WriteString("\n")
			}
		} else {
			b.WriteString(field.Edited.Text)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Commit atomically replaces the final directory with the staged one.
func (s *ExportStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

// Abort discards the staging directory.
func (s *ExportStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

func (s *ExportStore) writeFile(relPath string, data []byte) error {
	fullPath := filepath.Join(s.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

// exportFilename ensures the written file carries an extension matching
// its decoded media type.
func exportFilename(filename, mediaType string) string {
	ext := insideideo.MediaTypeExt(mediaType)
	if strings.HasSuffix(strings.ToLower(filename), "."+ext) {
		return filename
	}
	if idx := strings.LastIndex(filename, "."); idx > 0 {
		return filename[:idx] + "." + ext
	}
	return filename + "." + ext
}
