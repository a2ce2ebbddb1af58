package sqlite

import (
	"context"
	"database/sql"

	insideideo "github.com/niravbeni/inside-ideo"
)

// Compile-time interface verification.
var _ insideideo.PageService = (*PageService)(nil)

// PageService implements insideideo.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// CreatePages stores the page list for a session. Pages without a page
// number get one parsed from the server filename.
func (s *PageService) CreatePages(ctx context.Context, sessionID string, pages []*insideideo.PageRender) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, page := range pages {
		if err := page.Validate(); err != nil {
			return err
		}
		page.SessionID = sessionID
		if page.Page == 0 {
			page.Page = insideideo.ParsePageNumber(page.Filename)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO pages (session_id, filename, page, path, source_pdf, width, height, image_data, content_hash)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, sessionID, page.Filename, page.Page, page.Path, page.SourcePDF,
			page.Width, page.Height, page.ImageData, page.ContentHash); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindPagesBySession retrieves a session's pages in page order.
func (s *PageService) FindPagesBySession(ctx context.Context, sessionID string) ([]*insideideo.PageRender, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, filename, page, path, source_pdf, width, height, image_data, content_hash
		FROM pages
		WHERE session_id = ?
		ORDER BY page, filename
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*insideideo.PageRender
	for rows.Next() {
		var page insideideo.PageRender
		if err := rows.Scan(&page.SessionID, &page.Filename, &page.Page, &page.Path, &page.SourcePDF,
			&page.Width, &page.Height, &page.ImageData, &page.ContentHash); err != nil {
			return nil, err
		}
		pages = append(pages, &page)
	}
	return pages, rows.Err()
}

// SavePageImage records a fetched image payload for a page. The pending
// to loaded transition is one-way: a page that already has a payload is
// never overwritten.
func (s *PageService) SavePageImage(ctx context.Context, sessionID, filename, imageData, contentHash string) error {
	var existing string
	err := s.db.QueryRowContext(ctx, `
		SELECT image_data FROM pages WHERE session_id = ? AND filename = ?
	`, sessionID, filename).Scan(&existing)
	if err == sql.ErrNoRows {
		return insideideo.Errorf(insideideo.ENOTFOUND, "page %q not found", filename)
	}
	if err != nil {
		return err
	}
	if existing != "" {
		return insideideo.Errorf(insideideo.EINVALID, "page %q is already loaded", filename)
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE pages SET image_data = ?, content_hash = ? WHERE session_id = ? AND filename = ?
	`, imageData, contentHash, sessionID, filename)
	return err
}
