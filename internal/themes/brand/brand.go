// Package brandtheme layers a brand accent family on top of core and rounds
// the corner radii. It reads core's neutral family through the builder
// accessor to anchor its variant's surfaces.
package brandtheme

import (
	"github.com/forgeui/themegen/internal/color"
	"github.com/forgeui/themegen/internal/plugin"
	"github.com/forgeui/themegen/internal/theme"
	"github.com/forgeui/themegen/internal/tokens"
)

type brandPlugin struct{}

// New creates the brand theme plugin.
func New() plugin.Plugin {
	return &brandPlugin{}
}

func (p *brandPlugin) PluginMetadata() plugin.Metadata {
	return plugin.Metadata{
		ID:          "brand",
		Version:     "0.3.0",
		Name:        "Brand",
		Description: "Brand accent family and rounded radii",
		Author:      "forgeui",
		License:     "MIT",
		Tags:        []string{"brand"},
		Dependencies: []plugin.Dependency{
			{ID: "core", Constraint: "^1.2.0"},
		},
	}
}

func (p *brandPlugin) Register(ctx theme.RegisterContext) error {
	ctx.AddColor("brand", color.Definition{
		Source: color.LCH{L: 0.55, C: 0.16, H: 330},
		Scale:  []color.Step{color.Step100, color.Step300, color.Step500, color.Step700, color.Step900},
	})

	surface, err := ctx.ColorRef("neutral", color.Step50)
	if err != nil {
		return err
	}
	text, err := ctx.ColorRef("neutral", color.Step900)
	if err != nil {
		return err
	}

	ctx.AddVariant("brand-light", theme.VariantSpec{
		"background":   theme.Literal("#ffffff"),
		"surface":      theme.RefValue(surface),
		"text":         theme.RefValue(text),
		"text-muted":   theme.RefValue(color.MustRef("neutral", color.Step700)),
		"primary":      theme.RefValue(color.MustRef("brand", color.Step700)),
		"primary-text": theme.Literal("#ffffff"),
		"border":       theme.RefValue(color.MustRef("neutral", color.Step800)),
		"focus-ring":   theme.RefValue(color.MustRef("brand", color.Step700)),
	})

	ctx.SetTokens(tokens.Set{
		Radius: tokens.Override(tokens.Radius{
			None: 0,
			Sm:   4,
			Md:   8,
			Lg:   12,
			Xl:   20,
			Full: 9999,
		}),
	})

	return nil
}
