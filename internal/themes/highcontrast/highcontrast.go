// Package highcontrasttheme provides the accessibility-focused variant and
// the token overrides that go with it: a heavier focus ring and stricter
// accessibility settings. It also validates that the families it references
// survived the merge, as an example of plugin-scoped config validation.
package highcontrasttheme

import (
	"github.com/forgeui/themegen/internal/color"
	"github.com/forgeui/themegen/internal/plugin"
	"github.com/forgeui/themegen/internal/theme"
	"github.com/forgeui/themegen/internal/tokens"
)

type highContrastPlugin struct{}

// New creates the high-contrast theme plugin.
func New() plugin.Plugin {
	return &highContrastPlugin{}
}

func (p *highContrastPlugin) PluginMetadata() plugin.Metadata {
	return plugin.Metadata{
		ID:          "high-contrast",
		Version:     "1.0.0",
		Name:        "High contrast",
		Description: "AAA-oriented variant with reinforced focus indicators",
		Author:      "forgeui",
		License:     "MIT",
		Tags:        []string{"accessibility"},
		Dependencies: []plugin.Dependency{
			{ID: "core", Constraint: "^1.0.0"},
		},
	}
}

func (p *highContrastPlugin) Register(ctx theme.RegisterContext) error {
	ctx.AddVariant("high-contrast", theme.VariantSpec{
		"background":     theme.Literal("#ffffff"),
		"surface":        theme.Literal("#ffffff"),
		"text":           theme.Literal("#000000"),
		"text-muted":     theme.RefValue(color.MustRef("neutral", color.Step800)),
		"primary":        theme.RefValue(color.MustRef("primary", color.Step800)),
		"primary-text":   theme.Literal("#ffffff"),
		"secondary":      theme.Literal("#000000"),
		"secondary-text": theme.Literal("#ffffff"),
		"border":         theme.Literal("#000000"),
		"focus-ring":     theme.Literal("#000000"),
	})

	ctx.SetTokens(tokens.Set{
		Focus: tokens.Override(tokens.Focus{
			RingWidth:  3,
			RingOffset: 2,
			RingStyle:  "double",
		}),
		Accessibility: tokens.Override(tokens.Accessibility{
			MinTargetSize: 48,
			ReducedMotion: true,
		}),
	})

	return nil
}

// ValidateConfig checks that the merged config still carries everything the
// high-contrast variant references.
func (p *highContrastPlugin) ValidateConfig(cfg *theme.Config) []error {
	var errs []error
	for _, name := range []string{"neutral", "primary"} {
		if !cfg.HasColor(name) {
			errs = append(errs, &theme.ErrMissingColor{Plugin: "high-contrast", Color: name})
		}
	}
	if !cfg.HasTheme("high-contrast") {
		errs = append(errs, &theme.ErrMissingVariant{Plugin: "high-contrast", Variant: "high-contrast"})
	}
	return errs
}
