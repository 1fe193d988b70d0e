package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/forgeui/themegen/internal/contrast"
	"github.com/forgeui/themegen/internal/logger"
)

type validateOptions struct {
	manifestPath string
	level        string
	strict       bool
}

func newValidateCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Build the theme and report WCAG contrast compliance without emitting files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, verboseLogger(log, flags))
		},
	}

	cmd.Flags().StringVarP(&opts.manifestPath, "manifest", "m", "theme.yaml", "Path to the build manifest")
	cmd.Flags().StringVar(&opts.level, "level", "", "WCAG level to validate against (AA or AAA, default from manifest)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Validate at AAA and exit non-zero on violations")

	return cmd
}

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func runValidate(cmd *cobra.Command, opts *validateOptions, log *logger.Logger) error {
	result, m, err := buildFromManifest(log, opts.manifestPath)
	if err != nil {
		return newCommandError("validate theme", "running the theme pipeline", err, "Fix the reported problem in the manifest or plugin set and rerun.")
	}

	levelName := m.WCAG.Level
	if opts.level != "" {
		levelName = opts.level
	}
	if opts.strict || m.WCAG.Strict {
		levelName = string(contrast.LevelAAA)
	}
	level, err := contrast.ParseLevel(levelName)
	if err != nil {
		return newCommandError("validate theme", "selecting the WCAG level", err, "Use --level AA or --level AAA.")
	}

	violations := contrast.ValidateTheme(result.Config, level)
	out := cmd.OutOrStdout()

	if len(violations) == 0 {
		fmt.Fprintln(out, passStyle.Render(fmt.Sprintf("✓ all %s meet WCAG %s", pluralize(len(result.Config.Themes), "variant"), level)))
		return nil
	}

	for _, v := range violations {
		fmt.Fprintln(out, failStyle.Render("✗ "+v.String()))
	}
	fmt.Fprintf(out, "\n%s below WCAG %s\n", pluralize(len(violations), "pairing"), level)

	if opts.strict || m.WCAG.Strict {
		return fmt.Errorf("contrast validation failed at level %s", level)
	}
	return nil
}
