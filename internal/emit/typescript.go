package emit

import (
	"fmt"
	"strings"

	"github.com/forgeui/themegen/internal/theme"
)

// TypeScript renders the color registry consumed by component stylesheets:
// one nested const object keyed by family name and step.
func TypeScript(cfg *theme.Config) []byte {
	var b strings.Builder
	b.WriteString("// Generated by themegen. Do not edit.\n\n")
	b.WriteString("export const colors = {\n")

	for _, name := range cfg.ColorNames() {
		scale := cfg.Colors[name]
		fmt.Fprintf(&b, "  %q: {\n", name)
		for _, step := range scale.StepsOf() {
			fmt.Fprintf(&b, "    %s: %q,\n", step, scale[step].Hex)
		}
		b.WriteString("  },\n")
	}

	b.WriteString("} as const;\n\n")
	b.WriteString("export type ColorName = keyof typeof colors;\n")

	b.WriteString("\nexport const themes = [")
	for i, name := range cfg.ThemeNames() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", name)
	}
	b.WriteString("] as const;\n")

	return []byte(b.String())
}
