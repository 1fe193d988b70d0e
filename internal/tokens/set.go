package tokens

// Category holds either an explicit override or nothing. It replaces the
// "field present or undefined" check with a total two-case resolution: a
// category is owned as a whole unit or deferred as a whole unit, never
// merged field by field with the defaults.
type Category[T any] struct {
	set   bool
	value T
}

// Override declares an explicit value for a category.
func Override[T any](v T) Category[T] {
	return Category[T]{set: true, value: v}
}

// IsSet reports whether the category carries an override.
func (c Category[T]) IsSet() bool { return c.set }

// Resolve returns the override when present, otherwise the supplied default.
func (c Category[T]) Resolve(def T) T {
	if c.set {
		return c.value
	}
	return def
}

// Set is a plugin's design-token declaration: any subset of categories may be
// overridden, the rest defer to the defaults passed at resolution time.
type Set struct {
	Spacing       Category[Spacing]
	Radius        Category[Radius]
	Typography    Category[Typography]
	Motion        Category[Motion]
	Opacity       Category[Opacity]
	Breakpoints   Category[Breakpoints]
	Focus         Category[Focus]
	Accessibility Category[Accessibility]
	ZIndex        Category[ZIndex]
}

// Resolve materializes the full token record against the given defaults,
// category-atomically.
func (s Set) Resolve(def Defaults) Tokens {
	return Tokens{
		Spacing:       s.Spacing.Resolve(def.Spacing),
		Radius:        s.Radius.Resolve(def.Radius),
		Typography:    s.Typography.Resolve(def.Typography),
		Motion:        s.Motion.Resolve(def.Motion),
		Opacity:       s.Opacity.Resolve(def.Opacity),
		Breakpoints:   s.Breakpoints.Resolve(def.Breakpoints),
		Focus:         s.Focus.Resolve(def.Focus),
		Accessibility: s.Accessibility.Resolve(def.Accessibility),
		ZIndex:        s.ZIndex.Resolve(def.ZIndex),
	}
}
