package output

import (
	"bytes"
	"strings"
)

// CaptureBuffer collects printer output in tests.
type CaptureBuffer struct {
	bytes.Buffer
}

// Lines returns the captured output split into lines, without the final newline.
func (c *CaptureBuffer) Lines() []string {
	content := c.String()
	if content == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// NewTestPrinter returns a deterministic plain printer writing into a fresh buffer.
func NewTestPrinter() (*Printer, *CaptureBuffer) {
	buffer := &CaptureBuffer{}
	return NewPrinter(WithWriter(buffer), TestMode()), buffer
}

// MarkerStyles wraps text in [severity]...[/severity] so tests can see which
// style was applied.
type MarkerStyles struct {
	Unavailable bool
}

// GetStyle implements StyleProvider.
func (m *MarkerStyles) GetStyle(name string) TextStyle {
	return marker(name)
}

// IsAvailable implements StyleProvider.
func (m *MarkerStyles) IsAvailable() bool {
	return !m.Unavailable
}

type marker string

func (m marker) Render(strs ...string) string {
	return "[" + string(m) + "]" + strings.Join(strs, " ") + "[/" + string(m) + "]"
}
