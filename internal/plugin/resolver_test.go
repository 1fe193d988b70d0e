package plugin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forgeui/themegen/internal/theme"
)

type fakePlugin struct {
	meta      Metadata
	metaCalls int
}

func (p *fakePlugin) PluginMetadata() Metadata {
	p.metaCalls++
	return p.meta
}

func (p *fakePlugin) Register(theme.RegisterContext) error { return nil }

func fake(id, version string, deps ...Dependency) *fakePlugin {
	return &fakePlugin{meta: Metadata{ID: id, Version: version, Dependencies: deps}}
}

func ids(plugins []Plugin) []string {
	out := make([]string, 0, len(plugins))
	for _, p := range plugins {
		out = append(out, p.PluginMetadata().ID)
	}
	return out
}

func TestSortOrdersDependenciesFirst(t *testing.T) {
	brand := fake("brand", "1.0.0", Dependency{ID: "core"})
	dark := fake("dark", "1.0.0", Dependency{ID: "core"}, Dependency{ID: "brand"})
	core := fake("core", "1.0.0")

	sorted, err := Sort([]Plugin{dark, brand, core})
	require.NoError(t, err)
	require.Equal(t, []string{"core", "brand", "dark"}, ids(sorted))
}

func TestSortReadsMetadataOncePerPlugin(t *testing.T) {
	brand := fake("brand", "1.0.0", Dependency{ID: "core"})
	core := fake("core", "1.0.0")

	_, err := Sort([]Plugin{brand, core})
	require.NoError(t, err)
	require.Equal(t, 1, brand.metaCalls)
	require.Equal(t, 1, core.metaCalls)
}

func TestSortReturnsEveryPluginExactlyOnce(t *testing.T) {
	plugins := []Plugin{
		fake("a", "1.0.0"),
		fake("b", "1.0.0", Dependency{ID: "a"}),
		fake("c", "1.0.0", Dependency{ID: "a"}),
		fake("d", "1.0.0", Dependency{ID: "b"}, Dependency{ID: "c"}),
	}

	sorted, err := Sort(plugins)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a", "b", "c", "d"}, ids(sorted))

	index := map[string]int{}
	for i, id := range ids(sorted) {
		index[id] = i
	}
	require.Less(t, index["a"], index["b"])
	require.Less(t, index["a"], index["c"])
	require.Less(t, index["b"], index["d"])
	require.Less(t, index["c"], index["d"])
}

func TestSortPreservesInputOrderForIndependentPlugins(t *testing.T) {
	plugins := []Plugin{
		fake("zeta", "1.0.0"),
		fake("alpha", "1.0.0"),
		fake("mid", "1.0.0"),
	}

	sorted, err := Sort(plugins)
	require.NoError(t, err)
	require.Equal(t, []string{"zeta", "alpha", "mid"}, ids(sorted))
}

func TestSortMissingDependency(t *testing.T) {
	_, err := Sort([]Plugin{fake("a", "1.0.0", Dependency{ID: "ghost"})})
	require.Error(t, err)

	var missing *ErrMissingDependency
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "a", missing.Plugin)
	require.Equal(t, "ghost", missing.Dependency)
	require.Equal(t, "dependency_missing", missing.Code())
}

func TestSortOptionalDependencyAbsent(t *testing.T) {
	sorted, err := Sort([]Plugin{fake("a", "1.0.0", Dependency{ID: "ghost", Optional: true})})
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, ids(sorted))
}

func TestSortOptionalDependencyPresentStillOrders(t *testing.T) {
	opt := fake("opt", "1.0.0")
	user := fake("user", "1.0.0", Dependency{ID: "opt", Optional: true})

	sorted, err := Sort([]Plugin{user, opt})
	require.NoError(t, err)
	require.Equal(t, []string{"opt", "user"}, ids(sorted))
}

func TestSortDetectsCycle(t *testing.T) {
	a := fake("a", "1.0.0", Dependency{ID: "b"})
	b := fake("b", "1.0.0", Dependency{ID: "a"})

	_, err := Sort([]Plugin{a, b})
	require.Error(t, err)

	var cycle *ErrCircularDependency
	require.ErrorAs(t, err, &cycle)
	require.ElementsMatch(t, []string{"a", "b"}, cycle.Cycle)
	require.Equal(t, "circular_dependency", cycle.Code())
}

func TestSortVersionConstraints(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		core := fake("core", "1.2.3")
		user := fake("user", "1.0.0", Dependency{ID: "core", Constraint: "1.2.3"})

		_, err := Sort([]Plugin{core, user})
		require.NoError(t, err)
	})

	t.Run("exact mismatch", func(t *testing.T) {
		core := fake("core", "1.2.4")
		user := fake("user", "1.0.0", Dependency{ID: "core", Constraint: "1.2.3"})

		_, err := Sort([]Plugin{core, user})
		var mismatch *ErrVersionMismatch
		require.ErrorAs(t, err, &mismatch)
		require.Equal(t, "dependency_version_mismatch", mismatch.Code())
		require.Equal(t, "1.2.3", mismatch.Constraint)
		require.Equal(t, "1.2.4", mismatch.Actual)
	})

	t.Run("caret accepts same major", func(t *testing.T) {
		core := fake("core", "1.9.0")
		user := fake("user", "1.0.0", Dependency{ID: "core", Constraint: "^1.2.0"})

		_, err := Sort([]Plugin{core, user})
		require.NoError(t, err)
	})

	t.Run("caret rejects next major", func(t *testing.T) {
		core := fake("core", "2.0.0")
		user := fake("user", "1.0.0", Dependency{ID: "core", Constraint: "^1.2.0"})

		_, err := Sort([]Plugin{core, user})
		var mismatch *ErrVersionMismatch
		require.ErrorAs(t, err, &mismatch)
	})

	t.Run("caret on zero major pins minor", func(t *testing.T) {
		core := fake("core", "0.3.0")
		user := fake("user", "1.0.0", Dependency{ID: "core", Constraint: "^0.2.1"})

		_, err := Sort([]Plugin{core, user})
		var mismatch *ErrVersionMismatch
		require.ErrorAs(t, err, &mismatch)
	})
}

func TestSortRejectsDuplicateIDs(t *testing.T) {
	_, err := Sort([]Plugin{fake("a", "1.0.0"), fake("a", "2.0.0")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "more than once")
}
