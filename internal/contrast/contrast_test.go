package contrast

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"

	"github.com/forgeui/themegen/internal/theme"
)

func mustHex(t *testing.T, s string) colorful.Color {
	t.Helper()
	c, err := colorful.Hex(s)
	require.NoError(t, err)
	return c
}

func TestLuminanceExtremes(t *testing.T) {
	require.InDelta(t, 0.0, Luminance(mustHex(t, "#000000")), 1e-9)
	require.InDelta(t, 1.0, Luminance(mustHex(t, "#ffffff")), 1e-9)
}

func TestRatioProperties(t *testing.T) {
	black := mustHex(t, "#000000")
	white := mustHex(t, "#ffffff")

	require.InDelta(t, 21.0, Ratio(black, white), 1e-9)
	require.InDelta(t, 1.0, Ratio(white, white), 1e-9)
	require.Equal(t, Ratio(black, white), Ratio(white, black))
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("AA")
	require.NoError(t, err)
	require.Equal(t, LevelAA, level)

	level, err = ParseLevel("AAA")
	require.NoError(t, err)
	require.Equal(t, LevelAAA, level)

	_, err = ParseLevel("AAAA")
	require.Error(t, err)
}

func variantConfig(text string) *theme.Config {
	return &theme.Config{
		Themes: map[string]theme.Variant{
			"light": {
				"text":       text,
				"background": "#ffffff",
			},
		},
	}
}

func TestValidateThemePassingPairProducesNoViolation(t *testing.T) {
	// #767676 on white is ~4.54:1, just above the AA normal-text threshold.
	violations := ValidateTheme(variantConfig("#767676"), LevelAA)
	require.Empty(t, violations)
}

func TestValidateThemeFailingPairReportsBothRatios(t *testing.T) {
	// #7b7b7b on white is ~4.2:1, below the AA normal-text threshold.
	violations := ValidateTheme(variantConfig("#7b7b7b"), LevelAA)
	require.Len(t, violations, 1)

	v := violations[0]
	require.Equal(t, "light", v.Theme)
	require.Equal(t, "text", v.Token)
	require.Equal(t, "#7b7b7b", v.Foreground)
	require.Equal(t, "#ffffff", v.Background)
	require.Equal(t, 4.5, v.Required)
	require.Less(t, v.Ratio, 4.5)
	require.Greater(t, v.Ratio, 4.0)
}

func TestValidateThemeAAATightensThresholds(t *testing.T) {
	cfg := variantConfig("#767676")

	require.Empty(t, ValidateTheme(cfg, LevelAA))

	violations := ValidateTheme(cfg, LevelAAA)
	require.Len(t, violations, 1)
	require.Equal(t, 7.0, violations[0].Required)
}

func TestValidateThemeLargeTextThreshold(t *testing.T) {
	cfg := &theme.Config{
		Themes: map[string]theme.Variant{
			"light": {
				// ~3.3:1 against white: passes the 3:1 large-text row at AA,
				// fails the 4.5 AAA row.
				"primary":    "#8a8a8a",
				"background": "#ffffff",
			},
		},
	}

	require.Empty(t, ValidateTheme(cfg, LevelAA))

	violations := ValidateTheme(cfg, LevelAAA)
	require.Len(t, violations, 1)
	require.Equal(t, "primary", violations[0].Token)
	require.Equal(t, 4.5, violations[0].Required)
}

func TestValidateThemeSkipsUncheckableValues(t *testing.T) {
	cfg := &theme.Config{
		Themes: map[string]theme.Variant{
			"light": {
				"text":       "transparent",
				"background": "#ffffff",
			},
		},
	}
	require.Empty(t, ValidateTheme(cfg, LevelAAA))
}

func TestValidateThemeChecksEveryVariant(t *testing.T) {
	cfg := &theme.Config{
		Themes: map[string]theme.Variant{
			"light": {"text": "#7b7b7b", "background": "#ffffff"},
			"dark":  {"text": "#8a8a8a", "background": "#000000"},
		},
	}

	violations := ValidateTheme(cfg, LevelAA)
	require.Len(t, violations, 1)
	require.Equal(t, "light", violations[0].Theme)
}
