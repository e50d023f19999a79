package output

import "io"

// Option configures a Printer.
type Option func(*Printer)

// WithWriter sends output to writer instead of os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// WithStyles colors messages with provider. Unavailable providers are ignored.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		if provider != nil && provider.IsAvailable() {
			p.styles = provider
		}
	}
}

// PlainText disables styling even when a provider is set.
func PlainText() Option {
	return func(p *Printer) {
		p.plain = true
	}
}

// TestMode gives deterministic output: plain text and no clear-screen sequences.
func TestMode() Option {
	return func(p *Printer) {
		p.plain = true
		p.testMode = true
	}
}

// Silent discards all output.
func Silent() Option {
	return func(p *Printer) {
		p.silent = true
	}
}

// WithPrefix prepends prefix to every message.
func WithPrefix(prefix string) Option {
	return func(p *Printer) {
		p.prefix = prefix
	}
}
