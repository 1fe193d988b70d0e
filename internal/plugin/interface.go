package plugin

import (
	"github.com/forgeui/themegen/internal/theme"
)

// Plugin is the unit of theme configuration. Plugins are compiled-in, trusted
// modules: module-level singletons constructed once and consumed by a
// builder. A plugin must be stateless across builds; Register writes only
// into the context it is handed.
type Plugin interface {
	// PluginMetadata returns the plugin's identity, metadata and declared
	// dependencies. It must be cheap and side-effect free; the resolver
	// calls it before any Register runs.
	PluginMetadata() Metadata

	// Register is invoked exactly once per build, in resolved dependency
	// order. It contributes colors, theme variants and design-token
	// overrides through the context, and may read colors registered by
	// plugins that ran earlier.
	Register(ctx theme.RegisterContext) error
}

// Validator is an optional capability a plugin can implement to check the
// fully merged config for its own concerns, such as a required color or
// variant being present. The builder detects it via type assertion after the
// merge; returned errors are collected in aggregate rather than failing on
// the first one.
type Validator interface {
	ValidateConfig(cfg *theme.Config) []error
}
