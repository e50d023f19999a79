package testutils

import (
	"io"
	"strings"
	"sync"

	"assettracker/pkg/assettypes"
)

// KeepDefault submits the pre-filled default text unchanged when read by an
// editable prompt.
const KeepDefault = "\x00keep"

// ScriptedInput replays a fixed list of lines. It implements both
// assettypes.InputSource and input.LineReader and returns io.EOF once the
// script is exhausted.
type ScriptedInput struct {
	mu       sync.Mutex
	lines    []string
	prompts  []string
	defaults []string
}

// NewScriptedInput creates a ScriptedInput that returns lines in order.
func NewScriptedInput(lines ...string) *ScriptedInput {
	return &ScriptedInput{lines: lines}
}

// Push appends more lines to the script.
func (s *ScriptedInput) Push(lines ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, lines...)
}

// Remaining returns the number of unread lines.
func (s *ScriptedInput) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Prompts returns every prompt shown so far.
func (s *ScriptedInput) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

// Defaults returns the default text offered to every editable read so far.
func (s *ScriptedInput) Defaults() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.defaults...)
}

func (s *ScriptedInput) next(prompt, defaultText string, editable bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = append(s.prompts, prompt)
	if editable {
		s.defaults = append(s.defaults, defaultText)
	}
	if len(s.lines) == 0 {
		return "", io.EOF
	}

	line := s.lines[0]
	s.lines = s.lines[1:]
	if line == KeepDefault {
		return defaultText, nil
	}
	return line, nil
}

// ReadLine implements assettypes.InputSource.
func (s *ScriptedInput) ReadLine() (string, error) {
	return s.next("", "", false)
}

// ReadEditableLineWithDefault implements assettypes.InputSource.
func (s *ScriptedInput) ReadEditableLineWithDefault(defaultText string) (string, error) {
	return s.next("", defaultText, true)
}

// Readline implements input.LineReader.
func (s *ScriptedInput) Readline(prompt string) (string, error) {
	return s.next(prompt, "", false)
}

// ReadlineWithDefault implements input.LineReader.
func (s *ScriptedInput) ReadlineWithDefault(prompt, defaultText string) (string, error) {
	return s.next(prompt, defaultText, true)
}

// Message is one PutMessage call.
type Message struct {
	Text     string
	Severity assettypes.Severity
	Newline  bool
}

// RecordingSink records everything written to it. It implements assettypes.OutputSink.
type RecordingSink struct {
	Messages []Message
	Clears   int
}

var _ assettypes.OutputSink = (*RecordingSink)(nil)

// NewRecordingSink creates an empty RecordingSink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

// PutMessage implements assettypes.OutputSink.
func (r *RecordingSink) PutMessage(text string, severity assettypes.Severity, newline bool) {
	r.Messages = append(r.Messages, Message{Text: text, Severity: severity, Newline: newline})
}

// ClearScreen implements assettypes.OutputSink.
func (r *RecordingSink) ClearScreen() {
	r.Clears++
}

// Lines joins consecutive messages into the lines a terminal would show.
func (r *RecordingSink) Lines() []string {
	var lines []string
	var current strings.Builder
	for _, m := range r.Messages {
		current.WriteString(m.Text)
		if m.Newline {
			lines = append(lines, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// Texts returns the text of every message with the given severity.
func (r *RecordingSink) Texts(severity assettypes.Severity) []string {
	var texts []string
	for _, m := range r.Messages {
		if m.Severity == severity {
			texts = append(texts, m.Text)
		}
	}
	return texts
}

// Contains reports whether any message contains substr.
func (r *RecordingSink) Contains(substr string) bool {
	for _, m := range r.Messages {
		if strings.Contains(m.Text, substr) {
			return true
		}
	}
	return false
}

// Last returns the most recent message.
func (r *RecordingSink) Last() Message {
	if len(r.Messages) == 0 {
		return Message{}
	}
	return r.Messages[len(r.Messages)-1]
}

// Reset forgets recorded output.
func (r *RecordingSink) Reset() {
	r.Messages = nil
	r.Clears = 0
}
