package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/forgeui/themegen/internal/logger"
)

type previewOptions struct {
	manifestPath string
}

func newPreviewCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the generated color scales as terminal swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, opts, verboseLogger(log, flags))
		},
	}

	cmd.Flags().StringVarP(&opts.manifestPath, "manifest", "m", "theme.yaml", "Path to the build manifest")

	return cmd
}

var (
	nameStyle   = lipgloss.NewStyle().Bold(true)
	stepStyle   = lipgloss.NewStyle().Faint(true)
	swatchWidth = 9
)

func runPreview(cmd *cobra.Command, opts *previewOptions, log *logger.Logger) error {
	result, _, err := buildFromManifest(log, opts.manifestPath)
	if err != nil {
		return newCommandError("preview theme", "running the theme pipeline", err, "Fix the reported problem in the manifest or plugin set and rerun.")
	}

	out := cmd.OutOrStdout()
	for _, name := range result.Config.ColorNames() {
		scale := result.Config.Colors[name]
		fmt.Fprintln(out, nameStyle.Render(name))

		var steps, swatches string
		for _, step := range scale.StepsOf() {
			hex := scale[step].Hex
			swatch := lipgloss.NewStyle().
				Background(lipgloss.Color(hex)).
				Width(swatchWidth).
				Render(" ")
			swatches += swatch
			steps += stepStyle.Width(swatchWidth).Render(fmt.Sprintf(" %s", step))
		}
		fmt.Fprintln(out, swatches)
		fmt.Fprintln(out, steps)
		fmt.Fprintln(out)
	}

	return nil
}
