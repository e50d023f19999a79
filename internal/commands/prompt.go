package commands

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"assettracker/pkg/assettypes"
)

// ask shows prompt, then reads lines until parse accepts one. parse returns
// a non-empty message to reject the line and re-prompt.
func ask[T any](c *Commands, prompt string, parse func(line string) (T, string)) (T, error) {
	c.say(prompt)
	for {
		line, err := c.deps.In.ReadEditableLineWithDefault("")
		if err != nil {
			var zero T
			return zero, err
		}
		value, msg := parse(strings.TrimSpace(line))
		if msg == "" {
			return value, nil
		}
		c.deps.Out.PutMessage(msg, assettypes.Danger, true)
	}
}

// inputEnded reports whether err means the user closed or interrupted input
// rather than a collaborator failing.
func inputEnded(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt)
}

func nonBlank(msg string) func(string) (string, string) {
	return func(line string) (string, string) {
		if line == "" {
			return "", msg
		}
		return line, ""
	}
}

func pastDate(now time.Time) func(string) (time.Time, string) {
	return func(line string) (time.Time, string) {
		d, err := assettypes.ParseDate(line)
		if err != nil {
			return time.Time{}, "Please enter a valid date."
		}
		if d.After(now) {
			return time.Time{}, "The purchase date cannot be in the future."
		}
		return d, ""
	}
}

func price(line string) (float64, string) {
	p, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, "Please enter a valid number."
	}
	if p < 0 {
		return 0, "Price must not be less than 0."
	}
	return p, ""
}
