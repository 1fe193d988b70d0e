// Package themes exposes the compiled-in theme plugin catalog the CLI builds
// from. Plugins are trusted, in-process modules; the manifest selects which
// of them join a build by id.
package themes

import (
	"fmt"
	"sort"

	"github.com/forgeui/themegen/internal/plugin"
	brandtheme "github.com/forgeui/themegen/internal/themes/brand"
	coretheme "github.com/forgeui/themegen/internal/themes/core"
	highcontrasttheme "github.com/forgeui/themegen/internal/themes/highcontrast"
	midnighttheme "github.com/forgeui/themegen/internal/themes/midnight"
)

// Catalog returns every compiled-in plugin keyed by id.
func Catalog() map[string]plugin.Plugin {
	plugins := []plugin.Plugin{
		coretheme.New(),
		midnighttheme.New(),
		highcontrasttheme.New(),
		brandtheme.New(),
	}

	catalog := make(map[string]plugin.Plugin, len(plugins))
	for _, p := range plugins {
		catalog[p.PluginMetadata().ID] = p
	}
	return catalog
}

// Select resolves manifest plugin ids against the catalog, preserving the
// requested order.
func Select(ids []string) ([]plugin.Plugin, error) {
	catalog := Catalog()
	selected := make([]plugin.Plugin, 0, len(ids))
	for _, id := range ids {
		p, ok := catalog[id]
		if !ok {
			return nil, fmt.Errorf("unknown plugin '%s' (available: %v)", id, IDs())
		}
		selected = append(selected, p)
	}
	return selected, nil
}

// IDs lists the catalog ids in sorted order.
func IDs() []string {
	catalog := Catalog()
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
