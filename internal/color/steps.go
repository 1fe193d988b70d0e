package color

import "strconv"

// Step identifies a position in a color scale, from 50 (lightest) to 950 (darkest).
type Step int

// The canonical step set shared by every generated scale.
const (
	Step50  Step = 50
	Step100 Step = 100
	Step200 Step = 200
	Step300 Step = 300
	Step400 Step = 400
	Step500 Step = 500
	Step600 Step = 600
	Step700 Step = 700
	Step800 Step = 800
	Step900 Step = 900
	Step950 Step = 950
)

// Steps lists every canonical step in ascending order.
var Steps = []Step{Step50, Step100, Step200, Step300, Step400, Step500, Step600, Step700, Step800, Step900, Step950}

var stepIndex = func() map[Step]int {
	m := make(map[Step]int, len(Steps))
	for i, s := range Steps {
		m[s] = i
	}
	return m
}()

var stepSpelling = func() map[string]Step {
	m := make(map[string]Step, len(Steps))
	for _, s := range Steps {
		m[s.String()] = s
	}
	return m
}()

// IsValidStep reports whether s belongs to the canonical step set.
func IsValidStep(s Step) bool {
	_, ok := stepIndex[s]
	return ok
}

// ParseStep converts a string into a canonical step. Only the canonical
// spellings are accepted: "050" and "+50" are rejected even though they name
// the same number, so parsing and String stay exact inverses.
func ParseStep(s string) (Step, bool) {
	step, ok := stepSpelling[s]
	return step, ok
}

// Index returns the position of s within Steps, or -1 for a non-canonical step.
func (s Step) Index() int {
	idx, ok := stepIndex[s]
	if !ok {
		return -1
	}
	return idx
}

func (s Step) String() string {
	return strconv.Itoa(int(s))
}
