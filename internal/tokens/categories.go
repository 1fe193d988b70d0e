package tokens

// Spacing controls the spacing scale. Base is the unit in pixels; Scale lists
// the multipliers exposed as spacing tokens; Semantic names common distances.
type Spacing struct {
	Base     int
	Scale    []float64
	Semantic map[string]int
}

// Radius holds the corner radius tokens in pixels.
type Radius struct {
	None int
	Sm   int
	Md   int
	Lg   int
	Xl   int
	Full int
}

// FontSizes maps size names to pixel values.
type FontSizes struct {
	Xs   int
	Sm   int
	Md   int
	Lg   int
	Xl   int
	Xxl  int
	Xxxl int
}

// Typography holds font family stacks, sizes, weights and line heights.
type Typography struct {
	FamilySans  string
	FamilyMono  string
	Sizes       FontSizes
	WeightBody  int
	WeightBold  int
	LineHeight  float64
	LetterTight float64
}

// Durations holds motion durations in milliseconds.
type Durations struct {
	Instant int
	Fast    int
	Normal  int
	Slow    int
}

// Motion holds animation durations and easing curves.
type Motion struct {
	Durations Durations
	EaseIn    string
	EaseOut   string
	EaseInOut string
}

// Opacity holds the standard opacity tokens.
type Opacity struct {
	Disabled float64
	Hover    float64
	Overlay  float64
}

// Breakpoints holds responsive breakpoints in pixels.
type Breakpoints struct {
	Sm int
	Md int
	Lg int
	Xl int
}

// Focus controls the focus indicator.
type Focus struct {
	RingWidth  int
	RingOffset int
	RingStyle  string
}

// Accessibility holds non-visual accessibility knobs.
type Accessibility struct {
	MinTargetSize int
	ReducedMotion bool
}

// ZIndex holds the stacking-order tokens.
type ZIndex struct {
	Dropdown int
	Sticky   int
	Overlay  int
	Modal    int
	Popover  int
	Toast    int
}
