// Package midnighttheme provides the dark variant. It registers no colors of
// its own; every value is a symbolic reference into the families the core
// plugin registered before it.
package midnighttheme

import (
	"github.com/forgeui/themegen/internal/color"
	"github.com/forgeui/themegen/internal/plugin"
	"github.com/forgeui/themegen/internal/theme"
)

type midnightPlugin struct{}

// New creates the midnight theme plugin.
func New() plugin.Plugin {
	return &midnightPlugin{}
}

func (p *midnightPlugin) PluginMetadata() plugin.Metadata {
	return plugin.Metadata{
		ID:          "midnight",
		Version:     "1.0.0",
		Name:        "Midnight",
		Description: "Dark variant over the core color families",
		Author:      "forgeui",
		License:     "MIT",
		Tags:        []string{"dark"},
		Dependencies: []plugin.Dependency{
			{ID: "core", Constraint: "^1.0.0"},
		},
	}
}

func (p *midnightPlugin) Register(ctx theme.RegisterContext) error {
	// The accessor checks that core actually registered the families this
	// variant references.
	background, err := ctx.ColorRef("neutral", color.Step950)
	if err != nil {
		return err
	}
	accent, err := ctx.ColorRef("primary", color.Step400)
	if err != nil {
		return err
	}

	ctx.AddVariant("dark", theme.VariantSpec{
		"background":     theme.RefValue(background),
		"surface":        theme.RefValue(color.MustRef("neutral", color.Step900)),
		"text":           theme.RefValue(color.MustRef("neutral", color.Step50)),
		"text-muted":     theme.RefValue(color.MustRef("neutral", color.Step300)),
		"primary":        theme.RefValue(accent),
		"primary-text":   theme.RefValue(color.MustRef("neutral", color.Step950)),
		"secondary":      theme.RefValue(color.MustRef("neutral", color.Step200)),
		"secondary-text": theme.RefValue(color.MustRef("neutral", color.Step950)),
		"border":         theme.RefValue(color.MustRef("neutral", color.Step300)),
		"focus-ring":     theme.RefValue(accent),
	})

	return nil
}
