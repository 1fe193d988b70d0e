// Package coretheme provides the base theme plugin: the neutral and primary
// color families, the status colors, and the light variant every other theme
// builds on. It declares no design-token overrides, so a build with only this
// plugin uses the default token set unchanged.
package coretheme

import (
	"github.com/forgeui/themegen/internal/color"
	"github.com/forgeui/themegen/internal/plugin"
	"github.com/forgeui/themegen/internal/theme"
)

type corePlugin struct{}

// New creates the core theme plugin.
func New() plugin.Plugin {
	return &corePlugin{}
}

func (p *corePlugin) PluginMetadata() plugin.Metadata {
	return plugin.Metadata{
		ID:          "core",
		Version:     "1.2.0",
		Name:        "Core",
		Description: "Base color families, status colors and the light variant",
		Author:      "forgeui",
		License:     "MIT",
		Tags:        []string{"base", "light"},
	}
}

func fullScale() []color.Step {
	return append([]color.Step{}, color.Steps...)
}

func (p *corePlugin) Register(ctx theme.RegisterContext) error {
	ctx.AddColor("neutral", color.Definition{
		Source: color.LCH{L: 0.5, C: 0.015, H: 255},
		Scale:  fullScale(),
	})
	ctx.AddColor("primary", color.Definition{
		Source: color.LCH{L: 0.5, C: 0.14, H: 260},
		Scale:  fullScale(),
	})
	ctx.AddColor("success", color.Definition{
		Source: color.LCH{L: 0.5, C: 0.12, H: 145},
		Scale:  []color.Step{color.Step100, color.Step300, color.Step500, color.Step700, color.Step900},
	})
	ctx.AddColor("warning", color.Definition{
		Source: color.LCH{L: 0.55, C: 0.13, H: 85},
		Scale:  []color.Step{color.Step100, color.Step300, color.Step500, color.Step700, color.Step900},
	})
	ctx.AddColor("danger", color.Definition{
		Source: color.LCH{L: 0.5, C: 0.14, H: 25},
		Scale:  []color.Step{color.Step100, color.Step300, color.Step500, color.Step700, color.Step900},
	})

	ctx.AddVariant("light", theme.VariantSpec{
		"background":     theme.Literal("#ffffff"),
		"surface":        theme.RefValue(color.MustRef("neutral", color.Step50)),
		"text":           theme.RefValue(color.MustRef("neutral", color.Step900)),
		"text-muted":     theme.RefValue(color.MustRef("neutral", color.Step700)),
		"primary":        theme.RefValue(color.MustRef("primary", color.Step700)),
		"primary-text":   theme.Literal("#ffffff"),
		"secondary":      theme.RefValue(color.MustRef("neutral", color.Step800)),
		"secondary-text": theme.Literal("#ffffff"),
		"border":         theme.RefValue(color.MustRef("neutral", color.Step800)),
		"focus-ring":     theme.RefValue(color.MustRef("primary", color.Step700)),
	})

	return nil
}
