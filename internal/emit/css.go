// Package emit renders a built theme config to its build artifacts: a CSS
// custom-property stylesheet and a TypeScript color registry. It reads only
// the public config and emits in a fixed order, so identical configs always
// produce byte-identical files.
package emit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/forgeui/themegen/internal/theme"
	"github.com/forgeui/themegen/internal/tokens"
)

// CSS renders the config as a stylesheet: color scales and design tokens as
// custom properties on :root, one attribute-scoped block per theme variant.
func CSS(cfg *theme.Config) []byte {
	var b strings.Builder
	b.WriteString("/* Generated by themegen. Do not edit. */\n\n")

	b.WriteString(":root {\n")
	writeColorProperties(&b, cfg)
	writeTokenProperties(&b, cfg.DesignTokens)
	b.WriteString("}\n")

	for _, name := range cfg.ThemeNames() {
		variant := cfg.Themes[name]
		fmt.Fprintf(&b, "\n[data-theme=%q] {\n", name)
		for _, token := range sortedVariantTokens(variant) {
			fmt.Fprintf(&b, "  --%s: %s;\n", token, variant[token])
		}
		b.WriteString("}\n")
	}

	return []byte(b.String())
}

func writeColorProperties(b *strings.Builder, cfg *theme.Config) {
	for _, name := range cfg.ColorNames() {
		scale := cfg.Colors[name]
		for _, step := range scale.StepsOf() {
			fmt.Fprintf(b, "  --color-%s-%s: %s;\n", name, step, scale[step].Hex)
		}
	}
}

func writeTokenProperties(b *strings.Builder, t tokens.Tokens) {
	fmt.Fprintf(b, "  --spacing-base: %dpx;\n", t.Spacing.Base)
	for _, name := range sortedKeys(t.Spacing.Semantic) {
		fmt.Fprintf(b, "  --spacing-%s: %dpx;\n", name, t.Spacing.Semantic[name])
	}

	fmt.Fprintf(b, "  --radius-none: %dpx;\n", t.Radius.None)
	fmt.Fprintf(b, "  --radius-sm: %dpx;\n", t.Radius.Sm)
	fmt.Fprintf(b, "  --radius-md: %dpx;\n", t.Radius.Md)
	fmt.Fprintf(b, "  --radius-lg: %dpx;\n", t.Radius.Lg)
	fmt.Fprintf(b, "  --radius-xl: %dpx;\n", t.Radius.Xl)
	fmt.Fprintf(b, "  --radius-full: %dpx;\n", t.Radius.Full)

	fmt.Fprintf(b, "  --font-sans: %s;\n", t.Typography.FamilySans)
	fmt.Fprintf(b, "  --font-mono: %s;\n", t.Typography.FamilyMono)
	fmt.Fprintf(b, "  --line-height: %g;\n", t.Typography.LineHeight)

	fmt.Fprintf(b, "  --duration-instant: %dms;\n", t.Motion.Durations.Instant)
	fmt.Fprintf(b, "  --duration-fast: %dms;\n", t.Motion.Durations.Fast)
	fmt.Fprintf(b, "  --duration-normal: %dms;\n", t.Motion.Durations.Normal)
	fmt.Fprintf(b, "  --duration-slow: %dms;\n", t.Motion.Durations.Slow)
	fmt.Fprintf(b, "  --ease-in: %s;\n", t.Motion.EaseIn)
	fmt.Fprintf(b, "  --ease-out: %s;\n", t.Motion.EaseOut)
	fmt.Fprintf(b, "  --ease-in-out: %s;\n", t.Motion.EaseInOut)

	fmt.Fprintf(b, "  --opacity-disabled: %g;\n", t.Opacity.Disabled)
	fmt.Fprintf(b, "  --opacity-hover: %g;\n", t.Opacity.Hover)
	fmt.Fprintf(b, "  --opacity-overlay: %g;\n", t.Opacity.Overlay)

	fmt.Fprintf(b, "  --focus-ring-width: %dpx;\n", t.Focus.RingWidth)
	fmt.Fprintf(b, "  --focus-ring-offset: %dpx;\n", t.Focus.RingOffset)
	fmt.Fprintf(b, "  --focus-ring-style: %s;\n", t.Focus.RingStyle)

	fmt.Fprintf(b, "  --z-dropdown: %d;\n", t.ZIndex.Dropdown)
	fmt.Fprintf(b, "  --z-sticky: %d;\n", t.ZIndex.Sticky)
	fmt.Fprintf(b, "  --z-overlay: %d;\n", t.ZIndex.Overlay)
	fmt.Fprintf(b, "  --z-modal: %d;\n", t.ZIndex.Modal)
	fmt.Fprintf(b, "  --z-popover: %d;\n", t.ZIndex.Popover)
	fmt.Fprintf(b, "  --z-toast: %d;\n", t.ZIndex.Toast)
}

func sortedVariantTokens(v theme.Variant) []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
