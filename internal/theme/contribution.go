package theme

import (
	"github.com/forgeui/themegen/internal/color"
	"github.com/forgeui/themegen/internal/tokens"
)

// TokenValue is a variant entry before resolution: either a literal CSS value
// or a symbolic color reference. Exactly one field is set.
type TokenValue struct {
	Literal string
	Ref     color.Ref
}

// Literal wraps a plain CSS value.
func Literal(v string) TokenValue { return TokenValue{Literal: v} }

// RefValue wraps a color reference.
func RefValue(r color.Ref) TokenValue { return TokenValue{Ref: r} }

// IsRef reports whether the value is a symbolic reference.
func (v TokenValue) IsRef() bool { return !v.Ref.IsZero() }

// VariantSpec is an unresolved variant: semantic token names mapped to
// literals or references.
type VariantSpec map[string]TokenValue

// Contribution is the typed record one plugin's Register call produces. The
// builder folds the ordered list of contributions into a Config: colors and
// variants accumulate additively (last write wins per name), while the token
// set replaces the previous plugin's set wholesale, category by category.
type Contribution struct {
	Plugin   string
	Colors   map[string]color.Definition
	Variants map[string]VariantSpec
	Tokens   tokens.Set
}

// NewContribution returns an empty contribution for the named plugin.
func NewContribution(pluginID string) *Contribution {
	return &Contribution{
		Plugin:   pluginID,
		Colors:   make(map[string]color.Definition),
		Variants: make(map[string]VariantSpec),
	}
}

// RegisterContext is the surface a plugin sees during its Register call. It
// writes into the plugin's own contribution and reads from the accumulated
// state of the plugins that ran before it; colors of plugins that have not
// run yet are not observable.
type RegisterContext interface {
	// AddColor registers a color family. The definition is validated at
	// build finalization, when scales are generated.
	AddColor(name string, def color.Definition)

	// AddVariant registers a theme variant.
	AddVariant(name string, spec VariantSpec)

	// SetTokens declares this plugin's design-token overrides. Calling it
	// again replaces the previous declaration.
	SetTokens(set tokens.Set)

	// ColorRef returns a reference to a color family registered by this or
	// an earlier plugin. Referring to a family no prior plugin registered is
	// an error; forward references must go through color.MustRef and resolve
	// at build finalization instead.
	ColorRef(name string, step color.Step) (color.Ref, error)

	// HasColor reports whether the named family is visible at this point in
	// the registration order.
	HasColor(name string) bool
}
