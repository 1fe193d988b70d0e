package theme

import "fmt"

// ErrMissingColor is returned when a variant or plugin references a color
// family that was never registered.
type ErrMissingColor struct {
	Plugin string
	Color  string
	Token  string
}

func (e *ErrMissingColor) Error() string {
	if e.Token != "" {
		return fmt.Sprintf(
			"token '%s' references color '%s' which no plugin registered\nHint: register the color or fix the reference",
			e.Token,
			e.Color,
		)
	}
	return fmt.Sprintf(
		"plugin '%s' requires color '%s' which no plugin registered\nHint: register the color or add the providing plugin",
		e.Plugin,
		e.Color,
	)
}

// Code returns the stable error code for aggregation.
func (e *ErrMissingColor) Code() string { return "missing_color" }

// ErrMissingVariant is returned when a plugin's validation requires a theme
// variant that was never registered.
type ErrMissingVariant struct {
	Plugin  string
	Variant string
}

func (e *ErrMissingVariant) Error() string {
	return fmt.Sprintf(
		"plugin '%s' requires theme variant '%s' which no plugin registered\nHint: register the variant or add the providing plugin",
		e.Plugin,
		e.Variant,
	)
}

// Code returns the stable error code for aggregation.
func (e *ErrMissingVariant) Code() string { return "missing_theme_variant" }

// ErrMissingStep is returned when a reference names a registered color family
// but a step the family's scale does not include.
type ErrMissingStep struct {
	Color string
	Step  string
	Token string
}

func (e *ErrMissingStep) Error() string {
	return fmt.Sprintf(
		"token '%s' references step %s of color '%s', but the color's scale does not include it\nHint: add the step to the color definition's scale",
		e.Token,
		e.Step,
		e.Color,
	)
}

// Code returns the stable error code for aggregation.
func (e *ErrMissingStep) Code() string { return "missing_color" }
