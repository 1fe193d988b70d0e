package pipeline

import (
	"github.com/forgeui/themegen/internal/color"
	"github.com/forgeui/themegen/internal/theme"
	"github.com/forgeui/themegen/internal/tokens"
)

// registerContext is the builder-owned context handed to one plugin's
// Register call. Writes land in the plugin's own contribution; reads see the
// colors accumulated from plugins that already ran plus the plugin's own, and
// nothing from plugins still to run.
type registerContext struct {
	contribution *theme.Contribution
	prior        map[string]color.Definition
}

var _ theme.RegisterContext = (*registerContext)(nil)

func newRegisterContext(pluginID string, prior map[string]color.Definition) *registerContext {
	return &registerContext{
		contribution: theme.NewContribution(pluginID),
		prior:        prior,
	}
}

func (c *registerContext) AddColor(name string, def color.Definition) {
	c.contribution.Colors[name] = def
}

func (c *registerContext) AddVariant(name string, spec theme.VariantSpec) {
	c.contribution.Variants[name] = spec
}

func (c *registerContext) SetTokens(set tokens.Set) {
	c.contribution.Tokens = set
}

func (c *registerContext) ColorRef(name string, step color.Step) (color.Ref, error) {
	if !c.HasColor(name) {
		return color.Ref{}, &theme.ErrMissingColor{Plugin: c.contribution.Plugin, Color: name}
	}
	return color.NewRef(name, step)
}

func (c *registerContext) HasColor(name string) bool {
	if _, ok := c.contribution.Colors[name]; ok {
		return true
	}
	_, ok := c.prior[name]
	return ok
}
