package color

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Value is a resolved, emission-ready color: the sRGB color produced from the
// perceptual coordinates plus its lowercase hex form.
type Value struct {
	Hex   string
	Color colorful.Color
}

// Scale maps the requested steps of a definition to concrete colors. Steps
// absent from the definition have no entry at all.
type Scale map[Step]Value

// lightnessCurve fixes the perceptual lightness of every canonical step,
// indexed by step position. The curve, not the source color, decides where a
// step sits between near-white (50) and near-black (950); the source only
// contributes hue and chroma.
var lightnessCurve = [...]float64{
	0.97, // 50
	0.93, // 100
	0.86, // 200
	0.78, // 300
	0.69, // 400
	0.60, // 500
	0.50, // 600
	0.40, // 700
	0.30, // 800
	0.22, // 900
	0.15, // 950
}

// chromaCurve scales the source chroma per step. It tapers toward both ends
// of the scale so near-white and near-black steps stay inside the sRGB gamut,
// and never exceeds 1 so no step is more saturated than the source.
var chromaCurve = [...]float64{
	0.25, // 50
	0.40, // 100
	0.60, // 200
	0.80, // 300
	0.95, // 400
	1.00, // 500
	1.00, // 600
	0.95, // 700
	0.80, // 800
	0.60, // 900
	0.45, // 950
}

// GenerateScale expands a definition into one concrete color per requested
// step. Hue is held exactly at the source hue for every step; lightness and
// chroma follow the fixed per-step curves. The expansion is deterministic:
// equal definitions always produce byte-identical hex values.
func GenerateScale(def Definition) (Scale, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	scale := make(Scale, len(def.Scale))
	for _, step := range def.Scale {
		scale[step] = colorAt(def.Source, step)
	}
	return scale, nil
}

// colorAt derives the concrete color for one step of the scale.
func colorAt(src LCH, step Step) Value {
	idx := step.Index()
	l := lightnessCurve[idx]
	c := src.C * chromaCurve[idx]

	// Hcl takes the Lab-based LCh coordinates; Clamped projects out-of-gamut
	// results back onto sRGB without shifting hue noticeably.
	col := colorful.Hcl(src.H, c, l).Clamped()
	return Value{Hex: col.Hex(), Color: col}
}

// StepsOf returns the steps present in the scale in canonical order.
func (s Scale) StepsOf() []Step {
	out := make([]Step, 0, len(s))
	for _, step := range Steps {
		if _, ok := s[step]; ok {
			out = append(out, step)
		}
	}
	return out
}
