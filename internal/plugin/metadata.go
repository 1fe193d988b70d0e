package plugin

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var kebabPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Metadata describes a plugin's identity, presentation details and declared
// dependencies.
type Metadata struct {
	ID           string
	Version      string
	Name         string
	Description  string
	Author       string
	License      string
	Homepage     string
	Tags         []string
	Dependencies []Dependency
}

// Dependency declares that a plugin must run after another plugin.
type Dependency struct {
	// ID of the depended-on plugin.
	ID string

	// Constraint restricts acceptable versions of the dependency. Empty
	// accepts any version; a plain semver string requires that exact
	// version; a caret range ("^1.2.0") accepts the same major version, or
	// the same major.minor when the major version is 0.
	Constraint string

	// Optional dependencies order the plugin after the dependency when it
	// is present but do not block resolution when it is absent.
	Optional bool
}

// Validate ensures the metadata is well-formed.
func (m Metadata) Validate() error {
	if !kebabPattern.MatchString(m.ID) {
		return fmt.Errorf("plugin id '%s' must be lowercase kebab-case", m.ID)
	}
	if _, err := semver.StrictNewVersion(m.Version); err != nil {
		return fmt.Errorf("plugin '%s' has invalid version '%s': %w", m.ID, m.Version, err)
	}

	seen := map[string]struct{}{}
	for _, dep := range m.Dependencies {
		if strings.TrimSpace(dep.ID) == "" {
			return fmt.Errorf("plugin '%s' declares a dependency with an empty id", m.ID)
		}
		if dep.ID == m.ID {
			return fmt.Errorf("plugin '%s' cannot depend on itself", m.ID)
		}
		if _, dup := seen[dep.ID]; dup {
			return fmt.Errorf("plugin '%s' lists dependency '%s' more than once", m.ID, dep.ID)
		}
		seen[dep.ID] = struct{}{}

		if dep.Constraint != "" {
			if _, err := semver.NewConstraint(dep.Constraint); err != nil {
				return fmt.Errorf("plugin '%s' dependency '%s' has invalid constraint '%s': %w", m.ID, dep.ID, dep.Constraint, err)
			}
		}
	}
	return nil
}

// constraintSatisfied reports whether the dependency's constraint accepts the
// given version. An empty constraint accepts everything.
func (d Dependency) constraintSatisfied(version string) (bool, error) {
	if d.Constraint == "" {
		return true, nil
	}
	c, err := semver.NewConstraint(d.Constraint)
	if err != nil {
		return false, err
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}
