// Package input reads user lines from the terminal with line editing,
// history and tab completion.
package input

import (
	"fmt"
	"io"
	"sync"

	"github.com/chzyer/readline"
)

// LineReader reads one line after showing a prompt.
type LineReader interface {
	Readline(prompt string) (string, error)
	// ReadlineWithDefault pre-fills the editable line with defaultText.
	ReadlineWithDefault(prompt, defaultText string) (string, error)
}

// Config configures a Readline.
type Config struct {
	HistoryFile  string
	AutoComplete readline.AutoCompleter
	Stdin        io.ReadCloser
	Stdout       io.Writer
}

// Readline is a LineReader backed by github.com/chzyer/readline.
type Readline struct {
	instance *readline.Instance
	mu       sync.Mutex
}

var _ LineReader = (*Readline)(nil)

// NewReadline creates a terminal line reader.
func NewReadline(config Config) (*Readline, error) {
	instance, err := readline.NewEx(&readline.Config{
		HistoryFile:       config.HistoryFile,
		AutoComplete:      config.AutoComplete,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		Stdin:             config.Stdin,
		Stdout:            config.Stdout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &Readline{instance: instance}, nil
}

// Readline shows prompt and reads one line. It returns readline.ErrInterrupt
// on Ctrl-C and io.EOF on Ctrl-D or closed input.
func (r *Readline) Readline(prompt string) (string, error) {
	return r.ReadlineWithDefault(prompt, "")
}

// ReadlineWithDefault shows prompt and reads one line pre-filled with defaultText.
func (r *Readline) ReadlineWithDefault(prompt, defaultText string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.instance.SetPrompt(prompt)
	return r.instance.ReadlineWithDefault(defaultText)
}

// Stdout returns a writer that does not corrupt the line being edited.
func (r *Readline) Stdout() io.Writer {
	return r.instance.Stdout()
}

// Close restores the terminal.
func (r *Readline) Close() error {
	return r.instance.Close()
}
