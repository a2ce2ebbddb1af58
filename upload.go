package insideideo

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Upload limits.
const (
	// DefaultMaxFiles is the maximum number of PDFs per submission.
	DefaultMaxFiles = 5

	// DefaultMaxFileSize is the maximum size of a single PDF (10 MB).
	DefaultMaxFileSize = 10 << 20
)

// pdfMagic is the header every PDF file starts with.
var pdfMagic = []byte("%PDF-")

// UploadFile is a local file selected for submission.
type UploadFile struct {
	// Name is the filename sent to the server.
	Name string

	// Path is the local filesystem path.
	Path string

	// Size is the file size in bytes, filled in during validation.
	Size int64
}

// UploadPolicy holds the validation limits applied before submission.
type UploadPolicy struct {
	MaxFiles    int   `validate:"min=1,max=20"`
	MaxFileSize int64 `validate:"min=1"`
}

// DefaultUploadPolicy returns the standard limits.
func DefaultUploadPolicy() UploadPolicy {
	return UploadPolicy{
		MaxFiles:    DefaultMaxFiles,
		MaxFileSize: DefaultMaxFileSize,
	}
}

// Validate returns an error if the policy itself is misconfigured.
func (p UploadPolicy) Validate() error {
	return validator.New().Struct(p)
}

// ValidateFiles checks the given paths against the policy and returns the
// corresponding upload files. Validation failures are EINVALID errors and
// block submission; nothing is uploaded on a partial failure.
func (p UploadPolicy) ValidateFiles(paths []string) ([]UploadFile, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid upload policy: %w", err)
	}

	if len(paths) == 0 {
		return nil, Errorf(EINVALID, "no files selected")
	}
	if len(paths) > p.MaxFiles {
		return nil, Errorf(EINVALID, "too many files: %d selected, maximum is %d", len(paths), p.MaxFiles)
	}

	files := make([]UploadFile, 0, len(paths))
	for _, path := range paths {
		file, err := p.validateFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

// validateFile checks a single path: it must be a regular, non-empty PDF
// file within the size limit. The PDF check covers both the extension and
// the %PDF- magic header.
func (p UploadPolicy) validateFile(path string) (UploadFile, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return UploadFile{}, Errorf(EINVALID, "file does not exist: %s", path)
	}
	if err != nil {
		return UploadFile{}, fmt.Errorf("cannot access file %s: %w", path, err)
	}
	if info.IsDir() {
		return UploadFile{}, Errorf(EINVALID, "path is a directory, not a file: %s", path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return UploadFile{}, Errorf(EINVALID, "file is not a PDF: %s", path)
	}
	if info.Size() == 0 {
		return UploadFile{}, Errorf(EINVALID, "file is empty: %s", path)
	}
	if info.Size() > p.MaxFileSize {
		return UploadFile{}, Errorf(EINVALID, "file too large: %s is %d bytes, maximum is %d", path, info.Size(), p.MaxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return UploadFile{}, fmt.Errorf("cannot open file %s: %w", path, err)
	}
	defer f.Close()

	header := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		return UploadFile{}, fmt.Errorf("cannot read file %s: %w", path, err)
	}
	if !bytes.Equal(header, pdfMagic) {
		return UploadFile{}, Errorf(EINVALID, "file is not a valid PDF: %s", path)
	}

	return UploadFile{
		Name: info.Name(),
		Path: path,
		Size: info.Size(),
	}, nil
}
