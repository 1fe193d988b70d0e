package tokens

// Defaults holds one concrete value per category. The canonical default set
// comes from DefaultTokens; tests may construct alternates and pass them to
// Set.Resolve, so nothing in this package reads package-level state.
type Defaults struct {
	Spacing       Spacing
	Radius        Radius
	Typography    Typography
	Motion        Motion
	Opacity       Opacity
	Breakpoints   Breakpoints
	Focus         Focus
	Accessibility Accessibility
	ZIndex        ZIndex
}

// Tokens is a fully materialized token set: every category carries a concrete
// value. It is the design-token portion of the final theme config.
type Tokens = Defaults

// DefaultTokens returns the canonical process-wide default token set. The
// returned value is a copy; callers cannot corrupt the defaults of later
// builds.
func DefaultTokens() Defaults {
	return Defaults{
		Spacing: Spacing{
			Base:  4,
			Scale: []float64{0, 0.5, 1, 1.5, 2, 3, 4, 6, 8, 12, 16, 24},
			Semantic: map[string]int{
				"xs": 4,
				"sm": 8,
				"md": 16,
				"lg": 24,
				"xl": 32,
			},
		},
		Radius: Radius{
			None: 0,
			Sm:   2,
			Md:   4,
			Lg:   8,
			Xl:   16,
			Full: 9999,
		},
		Typography: Typography{
			FamilySans:  `system-ui, -apple-system, "Segoe UI", sans-serif`,
			FamilyMono:  `ui-monospace, "SF Mono", Menlo, monospace`,
			Sizes:       FontSizes{Xs: 12, Sm: 14, Md: 16, Lg: 18, Xl: 20, Xxl: 24, Xxxl: 32},
			WeightBody:  400,
			WeightBold:  600,
			LineHeight:  1.5,
			LetterTight: -0.01,
		},
		Motion: Motion{
			Durations: Durations{Instant: 0, Fast: 150, Normal: 250, Slow: 400},
			EaseIn:    "cubic-bezier(0.4, 0, 1, 1)",
			EaseOut:   "cubic-bezier(0, 0, 0.2, 1)",
			EaseInOut: "cubic-bezier(0.4, 0, 0.2, 1)",
		},
		Opacity: Opacity{
			Disabled: 0.5,
			Hover:    0.08,
			Overlay:  0.6,
		},
		Breakpoints: Breakpoints{Sm: 640, Md: 768, Lg: 1024, Xl: 1280},
		Focus: Focus{
			RingWidth:  2,
			RingOffset: 2,
			RingStyle:  "solid",
		},
		Accessibility: Accessibility{
			MinTargetSize: 44,
			ReducedMotion: true,
		},
		ZIndex: ZIndex{
			Dropdown: 1000,
			Sticky:   1100,
			Overlay:  1200,
			Modal:    1300,
			Popover:  1400,
			Toast:    1500,
		},
	}
}
