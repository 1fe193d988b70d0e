package plugin

import (
	"fmt"
	"strings"
)

// ErrMissingDependency is returned when a plugin declares a non-optional
// dependency on a plugin absent from the build.
type ErrMissingDependency struct {
	Plugin     string
	Dependency string
}

func (e *ErrMissingDependency) Error() string {
	return fmt.Sprintf(
		"plugin '%s' depends on '%s' which is not part of the build\nHint: add the dependency with Use, or mark it optional",
		e.Plugin,
		e.Dependency,
	)
}

// Code returns the stable error code for aggregation.
func (e *ErrMissingDependency) Code() string { return "dependency_missing" }

// ErrCircularDependency is returned when the plugin set contains a dependency
// cycle and no valid order exists.
type ErrCircularDependency struct {
	Cycle []string
}

func (e *ErrCircularDependency) Error() string {
	if len(e.Cycle) == 0 {
		return "circular plugin dependency detected\nHint: review plugin dependencies to remove cycles"
	}
	sequence := append(append([]string{}, e.Cycle...), e.Cycle[0])
	return fmt.Sprintf(
		"circular plugin dependency detected: %s\nHint: break the cycle by removing one of the dependencies",
		strings.Join(sequence, " -> "),
	)
}

// Code returns the stable error code for aggregation.
func (e *ErrCircularDependency) Code() string { return "circular_dependency" }

// ErrVersionMismatch is returned when a dependency's version constraint
// rejects the depended-on plugin's declared version.
type ErrVersionMismatch struct {
	Plugin     string
	Dependency string
	Constraint string
	Actual     string
}

func (e *ErrVersionMismatch) Error() string {
	return fmt.Sprintf(
		"plugin '%s' requires '%s' version %s, but %s is registered\nHint: align the plugin versions or relax the constraint",
		e.Plugin,
		e.Dependency,
		e.Constraint,
		e.Actual,
	)
}

// Code returns the stable error code for aggregation.
func (e *ErrVersionMismatch) Code() string { return "dependency_version_mismatch" }
