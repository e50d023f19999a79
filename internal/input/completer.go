package input

import (
	"sort"
	"strings"
)

// Completer completes the first word of a line from a dynamic set of names.
// It implements readline.AutoCompleter.
type Completer struct {
	names func() []string
}

// NewCompleter creates a Completer; names is called on every completion so
// the candidates follow the active command scope.
func NewCompleter(names func() []string) *Completer {
	return &Completer{names: names}
}

// Do implements the readline.AutoCompleter interface.
func (c *Completer) Do(line []rune, pos int) (newLine [][]rune, offset int) {
	if pos > len(line) {
		pos = len(line)
	}
	typed := string(line[:pos])

	// Only the command name is completed.
	if strings.ContainsAny(typed, " \t/") {
		return nil, 0
	}

	// Dispatch is case-sensitive, so completion is too.
	var matches []string
	for _, name := range c.names() {
		if strings.HasPrefix(name, typed) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)

	typedLen := len([]rune(typed))
	var suggestions [][]rune
	for _, match := range matches {
		suggestions = append(suggestions, []rune(match)[typedLen:])
	}
	return suggestions, typedLen
}
