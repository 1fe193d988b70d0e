package theme

import (
	"sort"

	"github.com/forgeui/themegen/internal/color"
	"github.com/forgeui/themegen/internal/tokens"
)

// Variant maps semantic token names (background, text, primary, ...) to
// resolved CSS values. During registration the values may be serialized color
// references; in a built Config every reference has been replaced by the
// concrete hex value.
type Variant map[string]string

// Config is the pipeline's terminal artifact: every registered color family
// expanded to its scale, every theme variant with fully resolved values, and
// one materialized design-token set. It is built once per Build call and is
// never mutated afterward; the contrast validator and the emitters only read
// it.
type Config struct {
	Colors       map[string]color.Scale
	Themes       map[string]Variant
	DesignTokens tokens.Tokens
}

// ColorNames returns the registered color family names in sorted order.
func (c *Config) ColorNames() []string {
	names := make([]string, 0, len(c.Colors))
	for name := range c.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeNames returns the variant names in sorted order.
func (c *Config) ThemeNames() []string {
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasColor reports whether the named color family was registered.
func (c *Config) HasColor(name string) bool {
	_, ok := c.Colors[name]
	return ok
}

// HasTheme reports whether the named variant was registered.
func (c *Config) HasTheme(name string) bool {
	_, ok := c.Themes[name]
	return ok
}
