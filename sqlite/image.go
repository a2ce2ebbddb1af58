package sqlite

import (
	"context"

	insideideo "github.com/niravbeni/inside-ideo"
)

// Compile-time interface verification.
var _ insideideo.ImageService = (*ImageService)(nil)

// ImageService implements insideideo.ImageService using SQLite.
type ImageService struct {
	db *DB
}

// NewImageService creates a new ImageService.
func NewImageService(db *DB) *ImageService {
	return &ImageService{db: db}
}

// CreateImages stores the image list for a session.
func (s *ImageService) CreateImages(ctx context.Context, sessionID string, images []*insideideo.ExtractedImage) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, img := range images {
		if err := img.Validate(); err != nil {
			return err
		}
		img.SessionID = sessionID

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO images (session_id, filename, page, idx, path, source_pdf, ocr_text, description, image_data, width, height)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, sessionID, img.Filename, img.Page, img.Index, img.Path, img.SourcePDF,
			img.OCRText, img.Description, img.ImageData, img.Width, img.Height); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindImagesBySession retrieves a session's images sorted by page, then
// by intra-page index.
func (s *ImageService) FindImagesBySession(ctx context.Context, sessionID string) ([]*insideideo.ExtractedImage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, filename, page, idx, path, source_pdf, ocr_text, description, image_data, width, height
		FROM images
		WHERE session_id = ?
		ORDER BY page, idx, filename
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []*insideideo.ExtractedImage
	for rows.Next() {
		var img insideideo.ExtractedImage
		if err := rows.Scan(&img.SessionID, &img.Filename, &img.Page, &img.Index, &img.Path, &img.SourcePDF,
			&img.OCRText, &img.Description, &img.ImageData, &img.Width, &img.Height); err != nil {
			return nil, err
		}
		images = append(images, &img)
	}
	return images, rows.Err()
}
