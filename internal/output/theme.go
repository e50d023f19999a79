package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"assettracker/internal/data/embedded"
)

// ThemeConfig is a color theme as stored in YAML. Styles are keyed by severity name.
type ThemeConfig struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description,omitempty"`
	Styles      map[string]StyleConfig `yaml:"styles"`
}

// StyleConfig styles one severity. Colors are ANSI numbers, hex strings or
// {light, dark} maps.
type StyleConfig struct {
	Foreground interface{} `yaml:"foreground,omitempty"`
	Background interface{} `yaml:"background,omitempty"`
	Bold       *bool       `yaml:"bold,omitempty"`
	Italic     *bool       `yaml:"italic,omitempty"`
	Underline  *bool       `yaml:"underline,omitempty"`
}

// Theme is a StyleProvider backed by lipgloss styles.
type Theme struct {
	Name   string
	styles map[string]lipgloss.Style
}

// ThemeNames returns the names of the embedded themes, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(embedded.Themes))
	for name := range embedded.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadTheme loads an embedded theme by name (case-insensitive).
func LoadTheme(name string) (*Theme, error) {
	data, ok := embedded.Themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return ParseTheme(data)
}

// ParseTheme builds a Theme from YAML data.
func ParseTheme(data []byte) (*Theme, error) {
	var config ThemeConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	theme := &Theme{
		Name:   config.Name,
		styles: make(map[string]lipgloss.Style, len(config.Styles)),
	}
	for name, sc := range config.Styles {
		theme.styles[name] = createStyle(sc)
	}
	return theme, nil
}

// GetStyle implements StyleProvider. Names without a configured style render unstyled.
func (t *Theme) GetStyle(name string) TextStyle {
	if style, ok := t.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// IsAvailable implements StyleProvider.
func (t *Theme) IsAvailable() bool {
	return t != nil
}

// createStyle converts a StyleConfig to a lipgloss.Style.
func createStyle(config StyleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()

	if color := parseColor(config.Foreground); color != nil {
		style = style.Foreground(color)
	}
	if color := parseColor(config.Background); color != nil {
		style = style.Background(color)
	}

	if config.Bold != nil && *config.Bold {
		style = style.Bold(true)
	}
	if config.Italic != nil && *config.Italic {
		style = style.Italic(true)
	}
	if config.Underline != nil && *config.Underline {
		style = style.Underline(true)
	}

	return style
}

// parseColor parses a color value that can be a string or a light/dark map.
func parseColor(colorValue interface{}) lipgloss.TerminalColor {
	switch v := colorValue.(type) {
	case string:
		return lipgloss.Color(v)
	case map[string]interface{}:
		light, hasLight := v["light"].(string)
		dark, hasDark := v["dark"].(string)
		if hasLight && hasDark {
			return lipgloss.AdaptiveColor{Light: light, Dark: dark}
		}
		return nil
	default:
		return nil
	}
}
