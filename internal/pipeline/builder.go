package pipeline

import (
	"fmt"
	"sort"

	"github.com/forgeui/themegen/internal/color"
	"github.com/forgeui/themegen/internal/logger"
	"github.com/forgeui/themegen/internal/plugin"
	"github.com/forgeui/themegen/internal/theme"
	"github.com/forgeui/themegen/internal/tokens"
)

// Builder accumulates plugins and folds their contributions into one theme
// config. A builder owns all of its accumulation state per Build call:
// calling Build twice, or building the same plugin instances through two
// builders, is safe and produces identical results.
type Builder struct {
	plugins  []plugin.Plugin
	defaults tokens.Defaults
	log      *logger.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithDefaults substitutes the default token set the merge resolves
// undeclared categories against. Tests use this to avoid depending on the
// canonical defaults.
func WithDefaults(d tokens.Defaults) Option {
	return func(b *Builder) { b.defaults = d }
}

// WithLogger attaches a logger; nil is a usable no-op.
func WithLogger(l *logger.Logger) Option {
	return func(b *Builder) { b.log = l }
}

// New creates a Builder resolving against the canonical default tokens.
func New(opts ...Option) *Builder {
	b := &Builder{defaults: tokens.DefaultTokens()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Use adds a plugin to the build. Order among independent plugins is the Use
// order.
func (b *Builder) Use(p plugin.Plugin) *Builder {
	b.plugins = append(b.plugins, p)
	return b
}

// Result carries the built config plus the non-fatal findings of each
// plugin's optional config validation. Whether findings fail the build is the
// caller's policy, not the pipeline's.
type Result struct {
	Config *theme.Config
	Issues []error
}

// Build resolves plugin order, runs every Register callback in that order,
// folds the contributions, generates color scales, resolves symbolic color
// references and runs plugin validations.
//
// Two merge rules apply, deliberately distinct: colors and theme variants
// accumulate additively across plugins (last write wins per name), while the
// design-token set is replaced wholesale by each successive plugin. A later
// plugin that does not declare a category therefore resets that category to
// the defaults even if an earlier plugin customized it.
func (b *Builder) Build() (*Result, error) {
	sorted, err := plugin.Sort(b.plugins)
	if err != nil {
		return nil, err
	}

	contributions, err := b.register(sorted)
	if err != nil {
		return nil, err
	}

	cfg, err := b.finalize(contributions)
	if err != nil {
		return nil, err
	}

	issues := b.validate(sorted, cfg)
	return &Result{Config: cfg, Issues: issues}, nil
}

// register runs every plugin's Register callback in resolved order, each over
// a fresh context that sees only previously accumulated colors.
func (b *Builder) register(sorted []plugin.Plugin) ([]*theme.Contribution, error) {
	accumulated := make(map[string]color.Definition)
	contributions := make([]*theme.Contribution, 0, len(sorted))

	for _, p := range sorted {
		id := p.PluginMetadata().ID
		ctx := newRegisterContext(id, accumulated)
		if err := p.Register(ctx); err != nil {
			return nil, fmt.Errorf("plugin '%s' register: %w", id, err)
		}

		for name, def := range ctx.contribution.Colors {
			accumulated[name] = def
		}
		contributions = append(contributions, ctx.contribution)
		b.logDebug("plugin registered", id)
	}
	return contributions, nil
}

// finalize folds the ordered contributions into an immutable config.
func (b *Builder) finalize(contributions []*theme.Contribution) (*theme.Config, error) {
	definitions := make(map[string]color.Definition)
	variants := make(map[string]theme.VariantSpec)
	tokenSet := tokens.Set{}

	for _, c := range contributions {
		for name, def := range c.Colors {
			definitions[name] = def
		}
		for name, spec := range c.Variants {
			variants[name] = spec
		}
		// Wholesale replacement: the last plugin's declaration decides
		// every category, undeclared ones falling back to defaults.
		tokenSet = c.Tokens
	}

	var errs []error

	colors := make(map[string]color.Scale, len(definitions))
	for _, name := range sortedKeys(definitions) {
		scale, err := color.GenerateScale(definitions[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("color '%s': %w", name, err))
			continue
		}
		colors[name] = scale
	}

	themes := make(map[string]theme.Variant, len(variants))
	for _, name := range sortedKeys(variants) {
		resolved, resolveErrs := resolveVariant(variants[name], colors)
		if len(resolveErrs) > 0 {
			errs = append(errs, resolveErrs...)
			continue
		}
		themes[name] = resolved
	}

	if len(errs) > 0 {
		return nil, &BuildError{Errs: errs}
	}

	return &theme.Config{
		Colors:       colors,
		Themes:       themes,
		DesignTokens: tokenSet.Resolve(b.defaults),
	}, nil
}

// resolveVariant replaces every symbolic color reference with the concrete
// hex value from the generated scales.
func resolveVariant(spec theme.VariantSpec, colors map[string]color.Scale) (theme.Variant, []error) {
	var errs []error
	resolved := make(theme.Variant, len(spec))

	for _, token := range sortedKeys(spec) {
		value := spec[token]
		if !value.IsRef() {
			resolved[token] = value.Literal
			continue
		}

		ref := value.Ref
		scale, ok := colors[ref.Name()]
		if !ok {
			errs = append(errs, &theme.ErrMissingColor{Color: ref.Name(), Token: token})
			continue
		}
		concrete, ok := scale[ref.Step()]
		if !ok {
			errs = append(errs, &theme.ErrMissingStep{Color: ref.Name(), Step: ref.Step().String(), Token: token})
			continue
		}
		resolved[token] = concrete.Hex
	}
	return resolved, errs
}

// validate runs each plugin's optional config validation and aggregates the
// findings.
func (b *Builder) validate(sorted []plugin.Plugin, cfg *theme.Config) []error {
	var issues []error
	for _, p := range sorted {
		v, ok := p.(plugin.Validator)
		if !ok {
			continue
		}
		found := v.ValidateConfig(cfg)
		if len(found) > 0 {
			b.logDebug("plugin validation reported issues", p.PluginMetadata().ID)
		}
		issues = append(issues, found...)
	}
	return issues
}

func (b *Builder) logDebug(msg, pluginID string) {
	if b.log == nil {
		return
	}
	b.log.WithFields(map[string]any{"plugin": pluginID}).Debug(msg)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
