package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"assettracker/internal/input"
	"assettracker/internal/logger"
	"assettracker/pkg/assettypes"
)

// Built-in command names added to every pushed context.
const (
	HelpCommand  = "help"
	ClearCommand = "clear"
	ExitCommand  = "exit"
)

// separators split an input line into tokens.
const separators = " \t/"

// Shell owns the context stack and the read-dispatch loop. It also acts as
// the output sink and input source for command handlers so that output is
// indented and prompts follow the active context.
type Shell struct {
	stack   []*Context
	reader  input.LineReader
	out     assettypes.OutputSink
	stopped bool

	// atLineStart is false while a line is being assembled from several messages.
	atLineStart bool

	sessionID string
	logger    *log.Logger
}

var (
	_ assettypes.OutputSink  = (*Shell)(nil)
	_ assettypes.InputSource = (*Shell)(nil)
)

// NewShell creates a Shell reading from reader and writing to out.
func NewShell(reader input.LineReader, out assettypes.OutputSink) *Shell {
	sessionID := uuid.New().String()
	return &Shell{
		reader:      reader,
		out:         out,
		atLineStart: true,
		sessionID:   sessionID,
		logger:      logger.NewStyledLogger("Shell").With("session", sessionID),
	}
}

// SessionID identifies this shell session in logs.
func (s *Shell) SessionID() string {
	return s.sessionID
}

// PushContext makes c the active context. The help, clear and exit commands
// are added to c unless it already has commands with those names.
func (s *Shell) PushContext(c *Context) error {
	if c == nil {
		return ErrNilContext
	}

	s.addBuiltins(c)
	s.stack = append(s.stack, c)
	s.logger.Debug("Context pushed", "context", c.Name(), "depth", len(s.stack))
	return nil
}

// PopContext returns to the previous context. The root context is never popped.
func (s *Shell) PopContext() {
	if len(s.stack) <= 1 {
		return
	}

	popped := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.logger.Debug("Context popped", "context", popped.Name(), "depth", len(s.stack))
}

// CurrentContext returns the active context or nil before the first push.
func (s *Shell) CurrentContext() *Context {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// Depth returns the number of stacked contexts.
func (s *Shell) Depth() int {
	return len(s.stack)
}

// CommandNames returns the command names of the active context.
func (s *Shell) CommandNames() []string {
	if c := s.CurrentContext(); c != nil {
		return c.CommandNames()
	}
	return nil
}

// Stop makes Run return after the current command.
func (s *Shell) Stop() {
	s.stopped = true
}

// Stopped reports whether Stop was called.
func (s *Shell) Stopped() bool {
	return s.stopped
}

// Run reads and dispatches commands until Stop is called or input ends.
func (s *Shell) Run() error {
	if s.CurrentContext() == nil {
		return ErrNoContext
	}

	s.stopped = false
	for !s.stopped {
		line, err := s.ReadLine()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) && strings.TrimSpace(line) != "" {
				continue
			}
			s.stopped = true
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				s.logger.Debug("Input closed", "error", err)
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		s.Dispatch(line)
	}
	return nil
}

// Dispatch runs a single input line against the active context.
func (s *Shell) Dispatch(line string) {
	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
	if len(tokens) == 0 {
		return
	}

	ctx := s.CurrentContext()
	name, args := tokens[0], tokens[1:]
	handler, ok := ctx.Command(name)
	if !ok {
		s.PutMessage(fmt.Sprintf("no command named '%s'", name), assettypes.Warning, true)
		return
	}

	logger.CommandExecution(name, args)
	result := handler(name, args)
	s.logger.Debug("Command finished", "command", name, "context", ctx.Name(), "result", result)
}

func (s *Shell) addBuiltins(c *Context) {
	builtins := []struct {
		name    string
		handler CommandHandler
	}{
		{HelpCommand, func(string, []string) bool { return s.help(c) }},
		{ClearCommand, func(string, []string) bool { return s.clear(c) }},
		{ExitCommand, func(string, []string) bool {
			s.Stop()
			return true
		}},
	}

	for _, b := range builtins {
		if c.HasCommand(b.name) {
			continue
		}
		_ = c.AddCommand(b.name, b.handler)
	}
}

// help lists every other command of c, numbered in registration order.
func (s *Shell) help(c *Context) bool {
	order := 1
	for _, name := range c.CommandNames() {
		if name == HelpCommand {
			continue
		}
		s.PutMessage(fmt.Sprintf("%-4s%s", fmt.Sprintf("%d.", order), name), assettypes.Neutral, true)
		order++
	}
	return true
}

func (s *Shell) clear(c *Context) bool {
	s.ClearScreen()
	if msg := c.ClearMessage(); msg != "" {
		s.PutMessage(msg, assettypes.Neutral, true)
	}
	return true
}

// PutMessage writes text indented by the active context's level.
func (s *Shell) PutMessage(text string, severity assettypes.Severity, newline bool) {
	if s.atLineStart {
		text = s.indent() + text
	}
	s.out.PutMessage(text, severity, newline)
	s.atLineStart = newline
}

// ClearScreen clears the terminal.
func (s *Shell) ClearScreen() {
	s.out.ClearScreen()
	s.atLineStart = true
}

// ReadLine reads a line after the active context's prompt.
func (s *Shell) ReadLine() (string, error) {
	line, err := s.reader.Readline(s.prompt())
	s.atLineStart = true
	return line, err
}

// ReadEditableLineWithDefault reads a line pre-filled with defaultText.
func (s *Shell) ReadEditableLineWithDefault(defaultText string) (string, error) {
	line, err := s.reader.ReadlineWithDefault(s.prompt(), defaultText)
	s.atLineStart = true
	return line, err
}

// IncreaseIndentation indents the active context one more level.
func (s *Shell) IncreaseIndentation() {
	if c := s.CurrentContext(); c != nil {
		c.IncreaseIndentation()
	}
}

// DecreaseIndentation removes one indentation level from the active context.
func (s *Shell) DecreaseIndentation() error {
	c := s.CurrentContext()
	if c == nil {
		return ErrNoContext
	}
	return c.DecreaseIndentation()
}

func (s *Shell) indent() string {
	if c := s.CurrentContext(); c != nil {
		return strings.Repeat("\t", c.Indentation())
	}
	return ""
}

func (s *Shell) prompt() string {
	c := s.CurrentContext()
	if c == nil {
		return DefaultPromptSymbol
	}
	return s.indent() + c.PromptSymbol()
}
