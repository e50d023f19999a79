package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assettracker/pkg/assettypes"
)

func TestPrinterPutMessageSeverities(t *testing.T) {
	printer, buffer := NewTestPrinter()

	printer.PutMessage("plain", assettypes.Neutral, true)
	printer.PutMessage("saved", assettypes.Success, true)
	printer.PutMessage("careful", assettypes.Warning, true)
	printer.PutMessage("failed", assettypes.Danger, true)

	assert.Equal(t, []string{
		"  plain",
		"✓ saved",
		"⚠ careful",
		"✗ failed",
	}, buffer.Lines())
}

func TestPrinterPutMessageWithoutNewline(t *testing.T) {
	printer, buffer := NewTestPrinter()

	printer.PutMessage("1   ", assettypes.Neutral, false)
	printer.PutMessage("Laptop", assettypes.Neutral, true)

	assert.Equal(t, "  1   Laptop\n", buffer.String())
}

func TestPlainMarksKeepColumnsAligned(t *testing.T) {
	printer, buffer := NewTestPrinter()

	printer.PutMessage("Id   Model", assettypes.Neutral, true)
	printer.PutMessage("1    ThinkPad", assettypes.Danger, true)
	printer.PutMessage("2    ", assettypes.Warning, false)
	printer.PutMessage("Pixel", assettypes.Danger, true)
	printer.PutMessage("3    MacBook", assettypes.Neutral, true)

	lines := buffer.Lines()
	assert.Equal(t, []string{
		"  Id   Model",
		"✗ 1    ThinkPad",
		"⚠ 2    Pixel",
		"  3    MacBook",
	}, lines)
	for _, line := range lines {
		assert.Equal(t, 2, ansi.StringWidth(string([]rune(line)[:2])), line)
	}
}

func TestPrinterUsesSeverityStyles(t *testing.T) {
	buffer := &CaptureBuffer{}
	printer := NewPrinter(WithWriter(buffer), WithStyles(&MarkerStyles{}))

	printer.PutMessage("expired", assettypes.Danger, true)
	printer.PutMessage("saved", assettypes.Success, false)

	assert.Equal(t, "[danger]expired[/danger]\n[success]saved[/success]", buffer.String())
	assert.True(t, printer.IsStylable())
}

func TestPrinterIgnoresUnavailableStyles(t *testing.T) {
	buffer := &CaptureBuffer{}
	printer := NewPrinter(WithWriter(buffer), WithStyles(&MarkerStyles{Unavailable: true}))

	printer.PutMessage("test message", assettypes.Warning, true)

	assert.Equal(t, "⚠ test message\n", buffer.String())
	assert.False(t, printer.IsStylable())
}

func TestPrinterPlainTextIgnoresStyles(t *testing.T) {
	buffer := &CaptureBuffer{}
	printer := NewPrinter(WithWriter(buffer), WithStyles(&MarkerStyles{}), PlainText())

	printer.PutMessage("low stock", assettypes.Warning, true)

	assert.Equal(t, "⚠ low stock\n", buffer.String())
}

func TestPrinterSilent(t *testing.T) {
	buffer := &CaptureBuffer{}
	printer := NewPrinter(WithWriter(buffer), Silent())

	printer.PutMessage("nothing", assettypes.Neutral, true)
	printer.ClearScreen()

	assert.Empty(t, buffer.String())
}

func TestPrinterPrefix(t *testing.T) {
	buffer := &CaptureBuffer{}
	printer := NewPrinter(WithWriter(buffer), TestMode(), WithPrefix("> "))

	printer.PutMessage("hello", assettypes.Success, true)

	assert.Equal(t, "> ✓ hello\n", buffer.String())
}

func TestClearScreenInTestModeWritesNothing(t *testing.T) {
	printer, buffer := NewTestPrinter()

	printer.ClearScreen()

	assert.Empty(t, buffer.String())
}

func TestClearScreenWritesEscapeSequence(t *testing.T) {
	buffer := &CaptureBuffer{}
	printer := NewPrinter(WithWriter(buffer), PlainText())

	printer.ClearScreen()

	assert.True(t, strings.HasPrefix(buffer.String(), "\x1b["), "expected ANSI sequence, got %q", buffer.String())
}

func TestRenderMarkdownPlainReturnsInput(t *testing.T) {
	printer, _ := NewTestPrinter()

	md := "## Statistics\n\n- one\n"
	assert.Equal(t, md, printer.RenderMarkdown(md))
}

func TestLoadTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		t.Run(name, func(t *testing.T) {
			theme, err := LoadTheme(name)
			require.NoError(t, err)
			assert.Equal(t, name, theme.Name)
			assert.True(t, theme.IsAvailable())
			for _, severity := range []assettypes.Severity{assettypes.Success, assettypes.Warning, assettypes.Danger} {
				_, ok := theme.styles[severity.String()]
				assert.True(t, ok, "theme %s has no %s style", name, severity)
			}
		})
	}
}

func TestLoadThemeUnknown(t *testing.T) {
	_, err := LoadTheme("neon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default")
}

func TestParseThemeAdaptiveColor(t *testing.T) {
	data := []byte(`
name: custom
styles:
  neutral:
    foreground:
      light: "#000000"
      dark: "#FFFFFF"
  success:
    foreground: "2"
    bold: true
`)
	theme, err := ParseTheme(data)
	require.NoError(t, err)
	assert.Equal(t, "custom", theme.Name)
	assert.Contains(t, theme.GetStyle("success").Render("ok"), "ok")
	assert.Equal(t, "text", theme.GetStyle("missing").Render("text"))
}

func TestParseThemeInvalidYAML(t *testing.T) {
	_, err := ParseTheme([]byte("styles: [unterminated"))
	assert.Error(t, err)
}
