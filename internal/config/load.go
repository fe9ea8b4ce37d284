package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bianoble/transform-results/internal/pathnorm"
	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = "transform-results.yaml"

// Load reads and validates a transform-results.yaml configuration file.
// Relative paths in the file are resolved against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	base := filepath.Dir(path)
	cfg.OutputRoot = resolve(base, cfg.OutputRoot)
	cfg.Manifest = resolve(base, cfg.Manifest)
	cfg.InputArtifact = resolve(base, cfg.InputArtifact)
	cfg.Workspace = resolve(base, cfg.Workspace)

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &cfg, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", cfg.Version))
	}

	if cfg.Workspace != "" {
		if cfg.OutputRoot != "" {
			errs = append(errs, "'workspace' and 'output_root' are mutually exclusive — use one or the other")
		}
		if cfg.Manifest != "" {
			errs = append(errs, "'workspace' and 'manifest' are mutually exclusive — use one or the other")
		}
	}

	// The manifest must survive the output root being wiped and re-populated.
	if cfg.OutputRoot != "" && cfg.Manifest != "" {
		if pathnorm.Contains(cfg.OutputRoot, cfg.Manifest) {
			errs = append(errs, fmt.Sprintf("manifest '%s' must not live inside output_root '%s'", cfg.Manifest, cfg.OutputRoot))
		}
	}

	return errs
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
