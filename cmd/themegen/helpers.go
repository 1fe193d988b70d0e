package main

import (
	"fmt"

	"github.com/forgeui/themegen/internal/logger"
	"github.com/forgeui/themegen/internal/manifest"
	"github.com/forgeui/themegen/internal/pipeline"
	"github.com/forgeui/themegen/internal/themes"
)

// buildFromManifest loads the manifest, assembles the selected plugins and
// runs the pipeline.
func buildFromManifest(log *logger.Logger, path string) (*pipeline.Result, *manifest.Manifest, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, nil, err
	}

	plugins, err := themes.Select(m.Plugins)
	if err != nil {
		return nil, nil, err
	}

	builder := pipeline.New(pipeline.WithLogger(log))
	for _, p := range plugins {
		builder.Use(p)
	}

	result, err := builder.Build()
	if err != nil {
		return nil, nil, err
	}

	for _, issue := range result.Issues {
		log.Warn(issue.Error())
	}
	return result, m, nil
}

func verboseLogger(log *logger.Logger, flags *rootFlags) *logger.Logger {
	if !flags.verbose {
		return log
	}
	verbose, err := logger.New(logger.Options{Level: "debug", Pretty: true})
	if err != nil {
		return log
	}
	return verbose
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
