package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds repo-level defaults for the commit message check. Every
// field can be overridden on the command line.
type Config struct {
	// Types overrides the allowed commit type vocabulary.
	Types []string `yaml:"types,omitempty"`
	// ForceScope makes the (scope) annotation mandatory.
	ForceScope bool `yaml:"forceScope,omitempty"`
	// LimitTo restricts the check to commits touching these path prefixes.
	LimitTo []string `yaml:"limitTo,omitempty"`
}

// FindConfigPath searches upward from the current working directory for a
// config file and returns the file path and the directory that contains it.
// It looks for ".commit-check.yaml" first and then ".hooks/commit-check.yaml"
// in each directory. If no config is found it returns an error naming the
// directory where the search started.
func FindConfigPath() (configPath, workDir string, err error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", "", err
	}
	startDir := dir
	for {
		p := filepath.Join(dir, ".commit-check.yaml")
		if _, err := os.Stat(p); err == nil {
			return p, dir, nil
		}
		p = filepath.Join(dir, ".hooks", "commit-check.yaml")
		if _, err := os.Stat(p); err == nil {
			return p, dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", fmt.Errorf("no .commit-check.yaml found (searched up from %s)", startDir)
		}
		dir = parent
	}
}

// Load reads a YAML configuration file from the given path and unmarshals it
// into a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Save marshals cfg to YAML and writes it to the given path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
