package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const exampleConfig = `
version: 1
output_root: build/transformed
manifest: build/results.bin
input_artifact: /abs/lib.jar
`

func TestLoadValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(exampleConfig), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("version = %d, want 1", cfg.Version)
	}
	if cfg.OutputRoot != filepath.Join(dir, "build", "transformed") {
		t.Errorf("output_root = %q", cfg.OutputRoot)
	}
	if cfg.Manifest != filepath.Join(dir, "build", "results.bin") {
		t.Errorf("manifest = %q", cfg.Manifest)
	}
	if cfg.InputArtifact != "/abs/lib.jar" {
		t.Errorf("input_artifact = %q", cfg.InputArtifact)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/transform-results.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist: %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("{{invalid yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadValidationFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("version: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if !strings.Contains(err.Error(), "unsupported version") {
		t.Errorf("expected 'unsupported version' in error, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"valid", Config{Version: 1, OutputRoot: "/out", Manifest: "/results.bin"}, ""},
		{"workspace only", Config{Version: 1, Workspace: "/ws"}, ""},
		{"bad version", Config{Version: 0}, "unsupported version"},
		{"workspace and root", Config{Version: 1, Workspace: "/ws", OutputRoot: "/out"}, "'workspace' and 'output_root'"},
		{"workspace and manifest", Config{Version: 1, Workspace: "/ws", Manifest: "/m"}, "'workspace' and 'manifest'"},
		{"manifest inside root", Config{Version: 1, OutputRoot: "/out", Manifest: "/out/results.bin"}, "must not live inside output_root"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(&tt.cfg)
			if tt.want == "" {
				if len(errs) > 0 {
					t.Errorf("expected no errors, got: %v", errs)
				}
				return
			}
			if !containsSubstring(errs, tt.want) {
				t.Errorf("expected %q, got: %v", tt.want, errs)
			}
		})
	}
}

func TestConfigUnknownFieldsIgnored(t *testing.T) {
	input := `
version: 1
future_field: should be ignored
output_root: /out
`
	var cfg Config
	if err := yaml.Unmarshal([]byte(input), &cfg); err != nil {
		t.Fatalf("should ignore unknown fields: %v", err)
	}
	if cfg.OutputRoot != "/out" {
		t.Errorf("output_root = %q", cfg.OutputRoot)
	}
}

func TestValidationErrorFormat(t *testing.T) {
	verr := &ValidationError{Errors: []string{"error one", "error two"}}
	msg := verr.Error()
	if !strings.Contains(msg, "config validation failed") {
		t.Errorf("missing header: %s", msg)
	}
	if !strings.Contains(msg, "error one") || !strings.Contains(msg, "error two") {
		t.Errorf("error message missing details: %s", msg)
	}
}

func containsSubstring(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}
