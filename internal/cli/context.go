// Package cli implements the interactive command engine: a stack of command
// scopes (contexts), each with its own ordered command table, and a read loop
// that dispatches user input to the active scope.
package cli

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilContext is returned when pushing a nil context.
	ErrNilContext = errors.New("context is nil")
	// ErrNoContext is returned when running without an active context.
	ErrNoContext = errors.New("no active context")
	// ErrIndentation is returned when decreasing indentation below zero.
	ErrIndentation = errors.New("indentation level is already zero")
	// ErrInvalidCommand is returned when registering a blank name, a nil handler or a duplicate name.
	ErrInvalidCommand = errors.New("invalid command")
)

// DefaultPromptSymbol is shown before user input.
const DefaultPromptSymbol = "-> "

// CommandHandler runs a command. It receives the command name and the
// remaining tokens and reports whether the command succeeded.
type CommandHandler func(command string, args []string) bool

// Context is a named command scope.
type Context struct {
	name         string
	promptSymbol string
	clearMessage string
	indentation  int

	names    []string
	handlers map[string]CommandHandler
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithPromptSymbol overrides the default prompt symbol.
func WithPromptSymbol(symbol string) ContextOption {
	return func(c *Context) {
		c.promptSymbol = symbol
	}
}

// WithClearMessage sets the message shown after the screen is cleared.
func WithClearMessage(message string) ContextOption {
	return func(c *Context) {
		c.clearMessage = message
	}
}

// WithIndentation sets the initial indentation level. Negative values are ignored.
func WithIndentation(level int) ContextOption {
	return func(c *Context) {
		if level >= 0 {
			c.indentation = level
		}
	}
}

// NewContext creates an empty command scope.
func NewContext(name string, options ...ContextOption) *Context {
	c := &Context{
		name:         name,
		promptSymbol: DefaultPromptSymbol,
		handlers:     make(map[string]CommandHandler),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Name returns the context name.
func (c *Context) Name() string {
	return c.name
}

// PromptSymbol returns the prompt shown before user input.
func (c *Context) PromptSymbol() string {
	return c.promptSymbol
}

// ClearMessage returns the message shown after clearing the screen.
func (c *Context) ClearMessage() string {
	return c.clearMessage
}

// Indentation returns the current indentation level.
func (c *Context) Indentation() int {
	return c.indentation
}

// IncreaseIndentation indents subsequent output one more level.
func (c *Context) IncreaseIndentation() {
	c.indentation++
}

// DecreaseIndentation removes one level of indentation. At level zero it
// returns ErrIndentation and leaves the level unchanged.
func (c *Context) DecreaseIndentation() error {
	if c.indentation == 0 {
		return fmt.Errorf("context %q: %w", c.name, ErrIndentation)
	}
	c.indentation--
	return nil
}

// AddCommand registers a handler under name. Blank names, nil handlers and
// names already registered are rejected and leave the table unchanged.
func (c *Context) AddCommand(name string, handler CommandHandler) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be blank", ErrInvalidCommand)
	}
	if handler == nil {
		return fmt.Errorf("%w: handler for %q is nil", ErrInvalidCommand, name)
	}
	if _, exists := c.handlers[name]; exists {
		return fmt.Errorf("%w: %q is already registered", ErrInvalidCommand, name)
	}

	c.names = append(c.names, name)
	c.handlers[name] = handler
	return nil
}

// HasCommand reports whether name is registered.
func (c *Context) HasCommand(name string) bool {
	_, ok := c.handlers[name]
	return ok
}

// Command returns the handler registered under name.
func (c *Context) Command(name string) (CommandHandler, bool) {
	handler, ok := c.handlers[name]
	return handler, ok
}

// CommandNames returns the registered names in registration order.
func (c *Context) CommandNames() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}
