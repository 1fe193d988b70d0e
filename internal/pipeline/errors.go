package pipeline

import "strings"

// BuildError aggregates the fatal problems found while finalizing a build, so
// a caller sees every unresolvable reference or bad definition in one pass
// instead of fixing them one at a time.
type BuildError struct {
	Errs []error
}

func (e *BuildError) Error() string {
	if len(e.Errs) == 1 {
		return e.Errs[0].Error()
	}

	var b strings.Builder
	b.WriteString("theme build failed:")
	for _, err := range e.Errs {
		b.WriteString("\n  - ")
		b.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n    "))
	}
	return b.String()
}

// Unwrap exposes the aggregated errors to errors.Is and errors.As.
func (e *BuildError) Unwrap() []error { return e.Errs }
