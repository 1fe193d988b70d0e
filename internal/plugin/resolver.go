package plugin

import "fmt"

// Sort orders plugins so every plugin runs after its non-optional
// dependencies. It is pure and synchronous: it inspects metadata only and
// never calls Register.
//
// Resolution fails, never returning a partial order, when a non-optional
// dependency is absent, a version constraint rejects the registered
// dependency, or the declared dependencies form a cycle. Optional
// dependencies order the plugin after the dependency when present and are
// ignored when absent. Mutually independent plugins keep their input order.
func Sort(plugins []Plugin) ([]Plugin, error) {
	byID := make(map[string]Plugin, len(plugins))
	meta := make(map[string]Metadata, len(plugins))
	position := make(map[string]int, len(plugins))
	ids := make([]string, 0, len(plugins))

	for i, p := range plugins {
		m := p.PluginMetadata()
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if _, dup := byID[m.ID]; dup {
			return nil, fmt.Errorf("plugin '%s' supplied more than once", m.ID)
		}
		byID[m.ID] = p
		meta[m.ID] = m
		position[m.ID] = i
		ids = append(ids, m.ID)
	}

	graph := newDependencyGraph()
	for _, id := range ids {
		m := meta[id]
		graph.addNode(m.ID)

		for _, dep := range m.Dependencies {
			target, present := meta[dep.ID]
			if !present {
				if dep.Optional {
					continue
				}
				return nil, &ErrMissingDependency{Plugin: m.ID, Dependency: dep.ID}
			}

			ok, err := dep.constraintSatisfied(target.Version)
			if err != nil {
				return nil, fmt.Errorf("plugin '%s' dependency '%s': %w", m.ID, dep.ID, err)
			}
			if !ok {
				return nil, &ErrVersionMismatch{
					Plugin:     m.ID,
					Dependency: dep.ID,
					Constraint: dep.Constraint,
					Actual:     target.Version,
				}
			}

			graph.addDependency(m.ID, dep.ID)
		}
	}

	order, err := graph.topoSort(position)
	if err != nil {
		return nil, err
	}

	sorted := make([]Plugin, 0, len(order))
	for _, id := range order {
		sorted = append(sorted, byID[id])
	}
	return sorted, nil
}
