package color

import "fmt"

// LCH holds perceptual source coordinates: lightness in [0,1], chroma >= 0,
// hue in degrees.
type LCH struct {
	L float64
	C float64
	H float64
}

// Definition describes one color family: a perceptual source color and the
// scale steps to derive from it.
type Definition struct {
	Source LCH
	Scale  []Step
}

// Validate checks that the definition can be expanded into a scale.
func (d Definition) Validate() error {
	if d.Source.L < 0 || d.Source.L > 1 {
		return &ErrInvalidDefinition{Reason: fmt.Sprintf("lightness %g outside [0,1]", d.Source.L)}
	}
	if d.Source.C < 0 {
		return &ErrInvalidDefinition{Reason: fmt.Sprintf("chroma %g must be non-negative", d.Source.C)}
	}
	if len(d.Scale) == 0 {
		return &ErrInvalidDefinition{Reason: "scale must request at least one step"}
	}

	prev := Step(0)
	for _, s := range d.Scale {
		if !IsValidStep(s) {
			return &ErrInvalidDefinition{Reason: fmt.Sprintf("step %d is not canonical", s)}
		}
		if s == prev {
			return &ErrInvalidDefinition{Reason: fmt.Sprintf("step %d listed more than once", s)}
		}
		if s < prev {
			return &ErrInvalidDefinition{Reason: fmt.Sprintf("steps must ascend, got %d after %d", s, prev)}
		}
		prev = s
	}
	return nil
}
