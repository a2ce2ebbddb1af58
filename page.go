package insideideo

import (
	"context"
	"strconv"
	"strings"
)

// PageStatus is the fetch lifecycle of a page render. Loaded is terminal;
// a failed fetch returns the page to Pending, so there is no distinct
// failed status.
type PageStatus string

const (
	PagePending PageStatus = "pending"
	PageLoading PageStatus = "loading"
	PageLoaded  PageStatus = "loaded"
)

// PageRender is a full-page image rendered by the server. It is created
// with a server-side path and no image payload; the payload is filled in
// by a later fetch and the transition to loaded is one-way.
type PageRender struct {
	SessionID   string `json:"sessionId"`
	Filename    string `json:"filename"`
	Page        int    `json:"page"`
	Path        string `json:"path"`
	SourcePDF   string `json:"sourcePdf,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	ImageData   string `json:"imageData,omitempty"`
	ContentHash string `json:"contentHash,omitempty"`
}

// Validate returns an error if the page contains invalid fields.
func (p *PageRender) Validate() error {
	if p.Filename == "" {
		return Errorf(EINVALID, "page filename required")
	}
	return nil
}

// Loaded reports whether the page's image payload has been fetched.
func (p *PageRender) Loaded() bool {
	return p.ImageData != ""
}

// Pending reports whether the page still needs a fetch: no payload yet
// and a server path to fetch from.
func (p *PageRender) Pending() bool {
	return p.ImageData == "" && p.Path != ""
}

// ParsePageNumber extracts the page number from a server page filename of
// the form "page_003_<uuid>.png". Returns 0 if the filename does not
// follow that form.
func ParsePageNumber(filename string) int {
	parts := strings.Split(filename, "_")
	if len(parts) < 2 {
		return 0
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return n
}

// PageService manages a session's page renders.
type PageService interface {
	// CreatePages stores the page list for a session.
	CreatePages(ctx context.Context, sessionID string, pages []*PageRender) error

	// FindPagesBySession retrieves a session's pages in page order.
	FindPagesBySession(ctx context.Context, sessionID string) ([]*PageRender, error)

	// SavePageImage records a fetched image payload for a page. The
	// transition is one-way: saving over an already-loaded page is
	// rejected with EINVALID. Returns ENOTFOUND for an unknown filename.
	SavePageImage(ctx context.Context, sessionID, filename, imageData, contentHash string) error
}

// PageImageFetcher retrieves the binary render of a single page from the
// server and returns it as an embeddable data URL.
type PageImageFetcher interface {
	FetchPageImage(ctx context.Context, filename string) (string, error)
}
