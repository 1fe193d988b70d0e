// Package contrast checks a built theme against the WCAG contrast rules. The
// validator is pure and read-only: it reports violations with the computed
// and required ratios and never rewrites a failing color.
package contrast

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/forgeui/themegen/internal/theme"
)

// Level selects which WCAG threshold table applies.
type Level string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// ParseLevel converts a CLI-supplied string into a Level.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelAA, LevelAAA:
		return Level(s), nil
	default:
		return "", fmt.Errorf("unknown WCAG level '%s' (expected AA or AAA)", s)
	}
}

// textSize distinguishes the two threshold rows of the WCAG tables.
type textSize int

const (
	normalText textSize = iota
	largeText
)

// thresholds returns the required ratio for a pairing at the given level.
func (s textSize) threshold(level Level) float64 {
	if level == LevelAAA {
		if s == largeText {
			return 4.5
		}
		return 7.0
	}
	if s == largeText {
		return 3.0
	}
	return 4.5
}

// pairing names one semantic foreground/background combination to check.
type pairing struct {
	foreground string
	background string
	size       textSize
}

// pairings is the fixed set of semantic combinations validated in every
// variant, light and dark alike. The ratio is symmetric, so one row covers
// both reading directions. Tokens a variant does not define are skipped;
// validating presence is the job of plugin validation, not the contrast
// checker.
var pairings = []pairing{
	{"text", "background", normalText},
	{"text", "surface", normalText},
	{"text-muted", "background", normalText},
	{"primary-text", "primary", normalText},
	{"secondary-text", "secondary", normalText},
	{"primary", "background", largeText},
	{"border", "background", largeText},
	{"focus-ring", "background", largeText},
}

// Violation records one pairing that fell below its required ratio.
type Violation struct {
	Theme      string
	Token      string
	Foreground string
	Background string
	Ratio      float64
	Required   float64
}

func (v Violation) String() string {
	return fmt.Sprintf(
		"[%s] %s: %s on %s is %.2f:1, needs %.2f:1",
		v.Theme, v.Token, v.Foreground, v.Background, v.Ratio, v.Required,
	)
}

// Luminance computes WCAG relative luminance for an sRGB color.
func Luminance(c colorful.Color) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(channel float64) float64 {
	if channel <= 0.03928 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}

// Ratio computes the WCAG contrast ratio between two colors. The result is
// symmetric and lies in [1, 21].
func Ratio(a, b colorful.Color) float64 {
	la := Luminance(a)
	lb := Luminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// ValidateTheme checks every variant of the config against the pairing table
// at the given level. A pairing exactly at its threshold passes; anything
// below produces exactly one violation carrying both ratios.
func ValidateTheme(cfg *theme.Config, level Level) []Violation {
	var violations []Violation

	for _, name := range cfg.ThemeNames() {
		variant := cfg.Themes[name]
		for _, p := range pairings {
			fg, fgOK := parseCSSColor(variant[p.foreground])
			bg, bgOK := parseCSSColor(variant[p.background])
			if !fgOK || !bgOK {
				continue
			}

			ratio := Ratio(fg, bg)
			required := p.size.threshold(level)
			if ratio < required {
				violations = append(violations, Violation{
					Theme:      name,
					Token:      p.foreground,
					Foreground: variant[p.foreground],
					Background: variant[p.background],
					Ratio:      ratio,
					Required:   required,
				})
			}
		}
	}
	return violations
}

// parseCSSColor accepts the hex values a built config carries. Non-hex
// literals (gradients, keywords) are not checkable and are skipped.
func parseCSSColor(value string) (colorful.Color, bool) {
	if value == "" {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}
