// Package embedded provides access to data files compiled into the binary:
// color themes and the mock data set used by the seed command.
package embedded

import _ "embed"

// DefaultThemeData contains the embedded default theme YAML data.
//
//go:embed themes/default.yaml
var DefaultThemeData []byte

// HighContrastThemeData contains the embedded high-contrast theme YAML data.
//
//go:embed themes/high-contrast.yaml
var HighContrastThemeData []byte

// Themes maps theme names to their YAML data.
var Themes = map[string][]byte{
	"default":       DefaultThemeData,
	"high-contrast": HighContrastThemeData,
}

// SeedData contains the mock offices and assets loaded by the seed command.
//
//go:embed seed/assets.yaml
var SeedData []byte
