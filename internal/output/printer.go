package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"assettracker/pkg/assettypes"
)

// Printer is the console output sink. It knows nothing about contexts or
// indentation; the shell prepends that before calling PutMessage.
type Printer struct {
	mu       sync.Mutex
	writer   io.Writer
	styles   StyleProvider
	plain    bool
	testMode bool
	silent   bool
	prefix   string

	// midLine is set while a line is assembled from several messages.
	midLine bool
}

var _ assettypes.OutputSink = (*Printer)(nil)

// NewPrinter creates a Printer writing to os.Stdout unless configured otherwise.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{writer: os.Stdout}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// PutMessage writes text highlighted according to severity.
func (p *Printer) PutMessage(text string, severity assettypes.Severity, newline bool) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	rendered := p.render(text, severity)
	if !p.midLine {
		rendered = p.prefix + rendered
	}
	if newline && !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}
	p.midLine = !strings.HasSuffix(rendered, "\n")
	_, _ = fmt.Fprint(p.writer, rendered) // Ignore write errors for output operations
}

// ClearScreen clears the terminal and moves the cursor home.
// It is a no-op in test mode so captured output stays deterministic.
func (p *Printer) ClearScreen() {
	if p.silent || p.testMode {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	termenv.NewOutput(p.writer).ClearScreen()
	p.midLine = false
}

// RenderMarkdown renders a markdown document for the terminal. Plain printers
// return the markdown unchanged.
func (p *Printer) RenderMarkdown(md string) string {
	if !p.IsStylable() {
		return md
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(rendered, "\n")
}

// IsStylable returns true if the printer applies colors.
func (p *Printer) IsStylable() bool {
	return !p.plain && p.styles != nil && p.styles.IsAvailable()
}

// SetWriter changes the output writer.
func (p *Printer) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = writer
}

// render styles text, or in plain mode puts the severity mark in front of
// it when it starts a line.
func (p *Printer) render(text string, severity assettypes.Severity) string {
	if p.IsStylable() {
		return p.styles.GetStyle(severity.String()).Render(text)
	}
	if p.midLine {
		return text
	}
	return plainMarks[severity] + text
}

// String returns a string representation for debugging.
func (p *Printer) String() string {
	return fmt.Sprintf("Printer{styled: %t, writer: %T}", p.IsStylable(), p.writer)
}
