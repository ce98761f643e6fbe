package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Built-in path defaults, matching the upstream pipeline layout.
const (
	defaultCritiquesFile = "output/critiques/all_critiques.json"
	defaultOutputFile    = "output/critiques/critiques_report.tex"
)

// defaultConfigFile is looked for in the working directory when no
// --config flag is given; a missing implicit config is not an error.
const defaultConfigFile = ".critex.yaml"

// Config holds critex settings. Precedence per field: CLI flag, then
// config file, then built-in default.
type Config struct {
	// CritiquesFile is the path to the critiques JSON input.
	CritiquesFile string `yaml:"critiques_file"`

	// OutputFile is the path the LaTeX report is written to.
	OutputFile string `yaml:"output_file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		CritiquesFile: defaultCritiquesFile,
		OutputFile:    defaultOutputFile,
	}
}

// loadConfig resolves the effective configuration. Flag values are
// passed in as overrides; an empty string means the flag was not set.
// An explicitly given config path must exist; the implicit
// .critex.yaml is optional.
func loadConfig(path, critiquesFlag, outputFlag string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
		// Empty fields in the file fall back to the defaults.
		if cfg.CritiquesFile == "" {
			cfg.CritiquesFile = defaultCritiquesFile
		}
		if cfg.OutputFile == "" {
			cfg.OutputFile = defaultOutputFile
		}
	case explicit:
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}

	if critiquesFlag != "" {
		cfg.CritiquesFile = critiquesFlag
	}
	if outputFlag != "" {
		cfg.OutputFile = outputFlag
	}

	return cfg, nil
}
