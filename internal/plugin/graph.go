package plugin

import "sort"

// dependencyGraph tracks which plugins must run before which. Nodes are
// plugin ids; an edge from D to P means P depends on D.
type dependencyGraph struct {
	nodes      map[string]struct{}
	dependsOn  map[string]map[string]struct{}
	dependedBy map[string]map[string]struct{}
}

func newDependencyGraph() *dependencyGraph {
	return &dependencyGraph{
		nodes:      make(map[string]struct{}),
		dependsOn:  make(map[string]map[string]struct{}),
		dependedBy: make(map[string]map[string]struct{}),
	}
}

func (g *dependencyGraph) addNode(id string) {
	if _, exists := g.nodes[id]; exists {
		return
	}
	g.nodes[id] = struct{}{}
	g.dependsOn[id] = make(map[string]struct{})
	g.dependedBy[id] = make(map[string]struct{})
}

func (g *dependencyGraph) addDependency(dependent, dependency string) {
	g.addNode(dependent)
	g.addNode(dependency)
	g.dependsOn[dependent][dependency] = struct{}{}
	g.dependedBy[dependency][dependent] = struct{}{}
}

// topoSort orders nodes so every dependency precedes its dependents. Among
// nodes whose dependencies are all satisfied, the one with the lowest
// priority value runs first; the resolver passes input positions so ties keep
// the caller's Use order and builds stay reproducible.
func (g *dependencyGraph) topoSort(priority map[string]int) ([]string, error) {
	remaining := make(map[string]int, len(g.nodes))
	for id := range g.nodes {
		remaining[id] = len(g.dependsOn[id])
	}

	ready := make([]string, 0, len(g.nodes))
	for id, deps := range remaining {
		if deps == 0 {
			ready = append(ready, id)
		}
	}
	byPriority := func(i, j int) bool { return priority[ready[i]] < priority[ready[j]] }
	sort.Slice(ready, byPriority)

	order := make([]string, 0, len(g.nodes))
	for len(ready) > 0 {
		current := ready[0]
		ready = ready[1:]
		order = append(order, current)

		for dependent := range g.dependedBy[current] {
			remaining[dependent]--
			if remaining[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
		sort.Slice(ready, byPriority)
	}

	if len(order) != len(g.nodes) {
		return nil, &ErrCircularDependency{Cycle: g.findCycle()}
	}
	return order, nil
}

// findCycle extracts one dependency cycle via DFS. It is only called when
// topoSort could not place every node, so a cycle is known to exist.
func (g *dependencyGraph) findCycle() []string {
	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	path := []string{}

	var cycle []string
	var dfs func(id string) bool

	dfs = func(id string) bool {
		visited[id] = true
		onStack[id] = true
		path = append(path, id)

		for dep := range g.dependsOn[id] {
			if !visited[dep] {
				if dfs(dep) {
					return true
				}
			} else if onStack[dep] {
				idx := len(path) - 1
				for idx >= 0 && path[idx] != dep {
					idx--
				}
				if idx >= 0 {
					cycle = append([]string{}, path[idx:]...)
					return true
				}
			}
		}

		onStack[id] = false
		path = path[:len(path)-1]
		return false
	}

	for _, id := range g.sortedNodes() {
		if !visited[id] {
			if dfs(id) {
				break
			}
		}
	}
	return cycle
}

func (g *dependencyGraph) sortedNodes() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
