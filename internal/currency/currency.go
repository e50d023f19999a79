// Package currency converts USD prices into the local currency of an office
// and formats them for display.
package currency

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrUnknownCulture is returned for a culture without a conversion rate.
var ErrUnknownCulture = errors.New("unknown culture")

// rate is the value of one USD in a local currency.
type rate struct {
	unit  currency.Unit
	perUS float64
}

// Converter converts USD amounts using a static rate table keyed by culture.
type Converter struct {
	rates map[string]rate
}

// NewConverter creates a Converter with the built-in rate table.
func NewConverter() *Converter {
	return &Converter{
		rates: map[string]rate{
			"ja-jp": {unit: currency.JPY, perUS: 104.663},
			"sv-se": {unit: currency.SEK, perUS: 8.48},
			"fr-fr": {unit: currency.EUR, perUS: 0.84},
			"en-us": {unit: currency.USD, perUS: 1},
		},
	}
}

// Cultures returns the supported culture tags, sorted.
func (c *Converter) Cultures() []string {
	names := make([]string, 0, len(c.rates))
	for name := range c.rates {
		names = append(names, language.Make(name).String())
	}
	sort.Strings(names)
	return names
}

func (c *Converter) lookup(culture string) (rate, error) {
	key := strings.ToLower(strings.TrimSpace(culture))
	// Swedish offices are sometimes recorded with the country code as language.
	if key == "se-se" {
		key = "sv-se"
	}
	r, ok := c.rates[key]
	if !ok {
		return rate{}, fmt.Errorf("%w: %q", ErrUnknownCulture, culture)
	}
	return r, nil
}

// Convert returns the USD amount expressed in the culture's currency.
func (c *Converter) Convert(usd float64, culture string) (float64, currency.Unit, error) {
	r, err := c.lookup(culture)
	if err != nil {
		return 0, currency.Unit{}, err
	}
	return usd * r.perUS, r.unit, nil
}

// Format converts usd and renders it as "<ISO> <amount>" using the number
// conventions of the culture.
func (c *Converter) Format(usd float64, culture string) (string, error) {
	amount, unit, err := c.Convert(usd, culture)
	if err != nil {
		return "", err
	}

	tag, err := language.Parse(culture)
	if err != nil {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)
	return p.Sprint(currency.ISO(unit.Amount(round(amount, unit)))), nil
}

// round rounds to the standard number of decimals for the unit.
func round(v float64, unit currency.Unit) float64 {
	scale, _ := currency.Standard.Rounding(unit)
	pow := math.Pow10(scale)
	return math.Round(v*pow) / pow
}
