package insideideo

import "context"

// ExtractedImage is an embedded figure the server pulled out of a PDF.
// Unlike page renders, the image payload arrives inline with the
// processing response and is never fetched lazily.
type ExtractedImage struct {
	SessionID   string `json:"sessionId"`
	Filename    string `json:"filename"`
	Page        int    `json:"page"`
	Index       int    `json:"index"`
	Path        string `json:"path,omitempty"`
	SourcePDF   string `json:"sourcePdf,omitempty"`
	OCRText     string `json:"ocrText,omitempty"`
	Description string `json:"description,omitempty"`
	ImageData   string `json:"imageData,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// Validate returns an error if the image contains invalid fields.
func (i *ExtractedImage) Validate() error {
	if i.Filename == "" {
		return Errorf(EINVALID, "image filename required")
	}
	return nil
}

// ImageService manages a session's extracted images.
type ImageService interface {
	// CreateImages stores the image list for a session.
	CreateImages(ctx context.Context, sessionID string, images []*ExtractedImage) error

	// FindImagesBySession retrieves a session's images sorted by page,
	// then by intra-page index.
	FindImagesBySession(ctx context.Context, sessionID string) ([]*ExtractedImage, error)
}
