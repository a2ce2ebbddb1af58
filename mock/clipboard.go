package mock

import insideideo "github.com/niravbeni/inside-ideo"

var _ insideideo.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of insideideo.Clipboard.
type Clipboard struct {
	WriteTextFn func(text string) error
}

func (c *Clipboard) WriteText(text string) error {
	return c.WriteTextFn(text)
}
