package color

import (
	"fmt"
	"regexp"
	"strings"
)

// Color family names follow the same kebab-case shape as plugin IDs. The
// pattern keeps "." (the ref separator) and every other reserved character
// out of names, so "name.step" strings always split unambiguously.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Ref is a symbolic reference to a step of a named color family. It stands in
// for a concrete CSS value in theme variants registered before the referenced
// color has been generated; the builder resolves every Ref once all plugins
// have run. The unexported fields keep a Ref from being confused with a
// literal color string.
type Ref struct {
	name string
	step Step
}

// NewRef creates a reference to step of the named color family.
func NewRef(name string, step Step) (Ref, error) {
	if strings.TrimSpace(name) == "" {
		return Ref{}, &ErrInvalidRef{Input: name, Reason: "color name must not be empty"}
	}
	if !namePattern.MatchString(name) {
		return Ref{}, &ErrInvalidRef{
			Input:  name,
			Reason: "color name must be kebab-case (lowercase letters, digits and single hyphens)",
		}
	}
	if !IsValidStep(step) {
		return Ref{}, &ErrInvalidRef{
			Input:  fmt.Sprintf("%s.%d", name, step),
			Reason: fmt.Sprintf("step %d is not one of the canonical steps %v", step, Steps),
		}
	}
	return Ref{name: name, step: step}, nil
}

// MustRef panics if the reference is invalid. Intended for compiled-in
// plugins whose references are fixed at authoring time.
func MustRef(name string, step Step) Ref {
	ref, err := NewRef(name, step)
	if err != nil {
		panic(err)
	}
	return ref
}

// Name returns the referenced color family name.
func (r Ref) Name() string { return r.name }

// Step returns the referenced scale step.
func (r Ref) Step() Step { return r.step }

// IsZero reports whether r is the zero reference.
func (r Ref) IsZero() bool { return r.name == "" }

// String serializes the reference as "name.step". ParseRef is its exact
// inverse for every reference produced by NewRef.
func (r Ref) String() string {
	return r.name + "." + r.step.String()
}

// ParseRef parses a "name.step" string back into a Ref. It returns ok=false
// for anything malformed: a missing or extra dot, an empty name, or a step
// outside the canonical set. It never panics on bad input.
func ParseRef(s string) (Ref, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 || !namePattern.MatchString(parts[0]) {
		return Ref{}, false
	}
	step, ok := ParseStep(parts[1])
	if !ok {
		return Ref{}, false
	}
	return Ref{name: parts[0], step: step}, true
}
