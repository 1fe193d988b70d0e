package plugin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraphTopoSortRespectsDependencies(t *testing.T) {
	g := newDependencyGraph()
	g.addDependency("b", "a")
	g.addDependency("c", "b")
	g.addDependency("c", "a")

	order, err := g.topoSort(map[string]int{"a": 2, "b": 1, "c": 0})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestGraphTopoSortTieBreakByPriority(t *testing.T) {
	g := newDependencyGraph()
	g.addNode("late")
	g.addNode("early")
	g.addNode("middle")

	order, err := g.topoSort(map[string]int{"late": 0, "early": 1, "middle": 2})
	require.NoError(t, err)
	require.Equal(t, []string{"late", "early", "middle"}, order)
}

func TestGraphTopoSortReportsCycleMembers(t *testing.T) {
	g := newDependencyGraph()
	g.addDependency("a", "b")
	g.addDependency("b", "c")
	g.addDependency("c", "a")
	g.addDependency("standalone", "a")

	_, err := g.topoSort(map[string]int{"a": 0, "b": 1, "c": 2, "standalone": 3})
	require.Error(t, err)

	var cycle *ErrCircularDependency
	require.ErrorAs(t, err, &cycle)
	require.ElementsMatch(t, []string{"a", "b", "c"}, cycle.Cycle)
}
