package plugin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetadataValidate(t *testing.T) {
	valid := Metadata{
		ID:      "theme-core",
		Version: "1.0.0",
		Name:    "Core theme",
		Dependencies: []Dependency{
			{ID: "other", Constraint: "^1.0.0"},
			{ID: "maybe", Optional: true},
		},
	}
	require.NoError(t, valid.Validate())

	cases := map[string]Metadata{
		"empty id":           {Version: "1.0.0"},
		"uppercase id":       {ID: "Core", Version: "1.0.0"},
		"underscore id":      {ID: "theme_core", Version: "1.0.0"},
		"trailing dash":      {ID: "core-", Version: "1.0.0"},
		"missing version":    {ID: "core"},
		"loose version":      {ID: "core", Version: "1.0"},
		"empty dep id":       {ID: "core", Version: "1.0.0", Dependencies: []Dependency{{}}},
		"self dependency":    {ID: "core", Version: "1.0.0", Dependencies: []Dependency{{ID: "core"}}},
		"duplicate dep":      {ID: "core", Version: "1.0.0", Dependencies: []Dependency{{ID: "x"}, {ID: "x"}}},
		"invalid constraint": {ID: "core", Version: "1.0.0", Dependencies: []Dependency{{ID: "x", Constraint: "not-a-version"}}},
	}
	for name, meta := range cases {
		require.Error(t, meta.Validate(), name)
	}
}

func TestDependencyConstraintSatisfied(t *testing.T) {
	any := Dependency{ID: "x"}
	ok, err := any.constraintSatisfied("9.9.9")
	require.NoError(t, err)
	require.True(t, ok)

	exact := Dependency{ID: "x", Constraint: "1.2.3"}
	ok, err = exact.constraintSatisfied("1.2.3")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = exact.constraintSatisfied("1.2.4")
	require.NoError(t, err)
	require.False(t, ok)
}
