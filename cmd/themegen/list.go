package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/forgeui/themegen/internal/themes"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the compiled-in theme plugins",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	catalog := themes.Catalog()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVERSION\tDEPENDS ON\tDESCRIPTION")

	for _, id := range themes.IDs() {
		meta := catalog[id].PluginMetadata()

		deps := make([]string, 0, len(meta.Dependencies))
		for _, d := range meta.Dependencies {
			entry := d.ID
			if d.Constraint != "" {
				entry += " " + d.Constraint
			}
			if d.Optional {
				entry += " (optional)"
			}
			deps = append(deps, entry)
		}
		depColumn := strings.Join(deps, ", ")
		if depColumn == "" {
			depColumn = "-"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", meta.ID, meta.Version, depColumn, meta.Description)
	}

	return w.Flush()
}
