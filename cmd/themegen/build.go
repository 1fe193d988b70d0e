package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/forgeui/themegen/internal/contrast"
	"github.com/forgeui/themegen/internal/emit"
	"github.com/forgeui/themegen/internal/logger"
)

type buildOptions struct {
	manifestPath string
	strict       bool
}

func newBuildCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the theme and emit CSS and TypeScript artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, verboseLogger(log, flags))
		},
	}

	cmd.Flags().StringVarP(&opts.manifestPath, "manifest", "m", "theme.yaml", "Path to the build manifest")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Treat contrast violations as build failures at AAA level")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *buildOptions, log *logger.Logger) error {
	result, m, err := buildFromManifest(log, opts.manifestPath)
	if err != nil {
		return newCommandError("build theme", "running the theme pipeline", err, "Fix the reported problem in the manifest or plugin set and rerun.")
	}

	level := contrast.Level(m.WCAG.Level)
	if opts.strict || m.WCAG.Strict {
		level = contrast.LevelAAA
	}

	violations := contrast.ValidateTheme(result.Config, level)
	for _, v := range violations {
		log.Warn(v.String())
	}
	if len(violations) > 0 && (opts.strict || m.WCAG.Strict) {
		return newCommandError(
			"build theme",
			fmt.Sprintf("%s failed %s contrast validation", pluralize(len(violations), "pairing"), level),
			fmt.Errorf("contrast validation failed"),
			"Adjust the failing colors or drop --strict to emit anyway.",
		)
	}

	if err := os.MkdirAll(m.Output.Dir, 0o755); err != nil {
		return newCommandError("build theme", "creating the output directory", err, "Check permissions on the output directory.")
	}

	cssPath := filepath.Join(m.Output.Dir, m.Output.CSS)
	if err := os.WriteFile(cssPath, emit.CSS(result.Config), 0o644); err != nil {
		return newCommandError("build theme", "writing the stylesheet", err, "Check permissions on the output directory.")
	}

	typesPath := filepath.Join(m.Output.Dir, m.Output.Types)
	if err := os.WriteFile(typesPath, emit.TypeScript(result.Config), 0o644); err != nil {
		return newCommandError("build theme", "writing the type registry", err, "Check permissions on the output directory.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Built %s and %s (%s, %s)\n",
		cssPath,
		typesPath,
		pluralize(len(result.Config.Colors), "color"),
		pluralize(len(result.Config.Themes), "variant"),
	)
	return nil
}
