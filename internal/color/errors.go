package color

import "fmt"

// ErrInvalidRef is returned when a color reference cannot be constructed or
// parsed.
type ErrInvalidRef struct {
	Input  string
	Reason string
}

func (e *ErrInvalidRef) Error() string {
	return fmt.Sprintf(
		"invalid color reference '%s': %s\nHint: references take the form '<name>.<step>' with a canonical step",
		e.Input,
		e.Reason,
	)
}

// Code returns the stable error code for aggregation.
func (e *ErrInvalidRef) Code() string { return "invalid_color_ref" }

// ErrInvalidDefinition is returned when a color definition fails validation.
type ErrInvalidDefinition struct {
	Name   string
	Reason string
}

func (e *ErrInvalidDefinition) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid color definition: %s", e.Reason)
	}
	return fmt.Sprintf("invalid color definition '%s': %s", e.Name, e.Reason)
}

// Code returns the stable error code for aggregation.
func (e *ErrInvalidDefinition) Code() string { return "invalid_color_definition" }
