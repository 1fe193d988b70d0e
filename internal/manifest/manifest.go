// Package manifest loads the YAML build manifest the CLI consumes: which
// plugins to enable, the WCAG target, and where artifacts go.
package manifest

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Manifest is the parsed build manifest.
type Manifest struct {
	Version string   `yaml:"version" validate:"required,semver"`
	Plugins []string `yaml:"plugins" validate:"required,min=1,dive,plugin_id"`
	WCAG    WCAG     `yaml:"wcag"`
	Output  Output   `yaml:"output"`
}

// WCAG selects the contrast validation target.
type WCAG struct {
	Level  string `yaml:"level" validate:"omitempty,wcag_level"`
	Strict bool   `yaml:"strict"`
}

// Output names the emitted artifacts.
type Output struct {
	Dir   string `yaml:"dir"`
	CSS   string `yaml:"css"`
	Types string `yaml:"types"`
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// Load reads, parses and validates a manifest file, applying defaults for
// optional fields.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates manifest bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		if line := extractLine(err); line > 0 {
			return nil, fmt.Errorf("parse manifest (line %d): %w", line, err)
		}
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	m.applyDefaults()

	if err := validatorInstance().Struct(&m); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &m, nil
}

func (m *Manifest) applyDefaults() {
	if m.WCAG.Level == "" {
		m.WCAG.Level = "AA"
	}
	if m.Output.Dir == "" {
		m.Output.Dir = "dist"
	}
	if m.Output.CSS == "" {
		m.Output.CSS = "theme.css"
	}
	if m.Output.Types == "" {
		m.Output.Types = "colors.d.ts"
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLinePattern.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
