package insideideo

import (
	"context"
	"encoding/json"
)

// ProcessRequest describes a submission to the processing service.
type ProcessRequest struct {
	// Files are the local PDF files to upload.
	Files []UploadFile

	// Prompt overrides the server's default analysis prompt when
	// non-empty.
	Prompt string

	// Schema overrides the server's default output schema when non-nil.
	// It must be a JSON object.
	Schema json.RawMessage
}

// ProcessResult is everything the server returns for one submission.
// StructuredData is kept raw so key order survives until decoding.
type ProcessResult struct {
	StructuredData json.RawMessage   `json:"structured_data"`
	Images         []*ExtractedImage `json:"images"`
	Pages          []*PageRender     `json:"pages"`
	Timings        *Timings          `json:"timings,omitempty"`
}

// Processor submits PDF files to the remote processing service and
// exposes the service's default prompt and schema.
type Processor interface {
	// ProcessPDFs uploads the request's files and returns the extracted
	// content and AI-structured data. A transport or server failure
	// returns an error and no partial result.
	ProcessPDFs(ctx context.Context, req ProcessRequest) (*ProcessResult, error)

	// DefaultPrompt returns the server's default analysis prompt.
	DefaultPrompt(ctx context.Context) (string, error)

	// DefaultSchema returns the server's default output schema.
	DefaultSchema(ctx context.Context) (json.RawMessage, error)
}
