// Package clipboard provides system clipboard access backed by
// github.com/atotto/clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	insideideo "github.com/niravbeni/inside-ideo"
)

// Ensure Writer implements insideideo.Clipboard at compile time.
var _ insideideo.Clipboard = (*Writer)(nil)

// Writer writes text to the system clipboard.
type Writer struct{}

// NewWriter creates a new clipboard Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteText copies text to the system clipboard.
func (w *Writer) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no system clipboard available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write to clipboard: %w", err)
	}
	return nil
}
