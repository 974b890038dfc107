// Package config loads optional project defaults from .ashview.yaml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".ashview.yaml"

// Config holds project-level defaults for the CLI. Flags and positional
// arguments always win over config values.
type Config struct {
	// DataPath is the default scan-results JSON file.
	DataPath string `yaml:"dataPath"`
	// OutputPath is the default assembled report file.
	OutputPath string `yaml:"outputPath"`
	// DistDir is the default directory holding compiled dashboard assets.
	DistDir string `yaml:"distDir"`
	// Format is the default output format for view commands.
	Format string `yaml:"format"`
}

// Defaults returns the built-in conventional paths.
func Defaults() Config {
	return Config{
		DataPath:   "sample-data.json",
		OutputPath: "ash-report.html",
		DistDir:    "dist/assets",
		Format:     "human",
	}
}

// Load reads the config file at path and overlays it on the defaults.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if file.DataPath != "" {
		cfg.DataPath = file.DataPath
	}
	if file.OutputPath != "" {
		cfg.OutputPath = file.OutputPath
	}
	if file.DistDir != "" {
		cfg.DistDir = file.DistDir
	}
	if file.Format != "" {
		cfg.Format = file.Format
	}
	return cfg, nil
}
