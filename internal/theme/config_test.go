package theme

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forgeui/themegen/internal/color"
)

func TestConfigAccessors(t *testing.T) {
	cfg := &Config{
		Colors: map[string]color.Scale{"zeta": {}, "alpha": {}},
		Themes: map[string]Variant{"light": {}, "dark": {}},
	}

	require.Equal(t, []string{"alpha", "zeta"}, cfg.ColorNames())
	require.Equal(t, []string{"dark", "light"}, cfg.ThemeNames())
	require.True(t, cfg.HasColor("alpha"))
	require.False(t, cfg.HasColor("beta"))
	require.True(t, cfg.HasTheme("dark"))
	require.False(t, cfg.HasTheme("sepia"))
}

func TestTokenValueKinds(t *testing.T) {
	lit := Literal("#ffffff")
	require.False(t, lit.IsRef())
	require.Equal(t, "#ffffff", lit.Literal)

	ref := RefValue(color.MustRef("primary", color.Step500))
	require.True(t, ref.IsRef())
	require.Equal(t, "primary", ref.Ref.Name())
}

func TestErrorCodes(t *testing.T) {
	missingColor := &ErrMissingColor{Plugin: "p", Color: "brand"}
	require.Equal(t, "missing_color", missingColor.Code())
	require.Contains(t, missingColor.Error(), "brand")

	tokenScoped := &ErrMissingColor{Color: "brand", Token: "primary"}
	require.Contains(t, tokenScoped.Error(), "primary")

	missingVariant := &ErrMissingVariant{Plugin: "p", Variant: "dark"}
	require.Equal(t, "missing_theme_variant", missingVariant.Code())
	require.Contains(t, missingVariant.Error(), "dark")

	missingStep := &ErrMissingStep{Color: "brand", Step: "200", Token: "primary"}
	require.Equal(t, "missing_color", missingStep.Code())
	require.Contains(t, missingStep.Error(), "200")
}
