package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bianoble/transform-results/internal/config"
	"github.com/bianoble/transform-results/internal/manifest"
	"github.com/bianoble/transform-results/internal/workspace"
)

// defaultWorkspaceName is the workspace used below workspace.DefaultDir when
// no location is configured.
const defaultWorkspaceName = "default"

// settings is the effective configuration after merging the config file
// with command-line flags.
type settings struct {
	OutputRoot    string
	Manifest      string
	InputArtifact string
}

// loadSettings reads the config file if present and applies flag overrides.
// A missing config file is only an error when --config was given explicitly.
func loadSettings() (*settings, error) {
	cfg := &config.Config{Version: 1}
	loaded, err := config.Load(configPath)
	switch {
	case err == nil:
		cfg = loaded
		detail("config: %s", configPath)
	case errors.Is(err, os.ErrNotExist) && !rootCmd.PersistentFlags().Changed("config"):
		// no config file; flags only
	default:
		return nil, fmt.Errorf("loading config %s: %w", configPath, err)
	}

	if workspaceDir != "" {
		cfg.Workspace = workspaceDir
		cfg.OutputRoot = ""
		cfg.Manifest = ""
	}
	if outputRoot != "" {
		cfg.OutputRoot = outputRoot
		cfg.Workspace = ""
	}
	if manifestPath != "" {
		cfg.Manifest = manifestPath
		cfg.Workspace = ""
	}
	if inputArtifact != "" {
		cfg.InputArtifact = inputArtifact
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		return nil, &config.ValidationError{Errors: errs}
	}

	// Nothing configured: fall back to the shared workspace in the user cache.
	if cfg.Workspace == "" && cfg.OutputRoot == "" && cfg.Manifest == "" {
		cfg.Workspace = filepath.Join(workspace.DefaultDir(), defaultWorkspaceName)
	}

	s := &settings{
		OutputRoot:    cfg.OutputRoot,
		Manifest:      cfg.Manifest,
		InputArtifact: cfg.InputArtifact,
	}
	if cfg.Workspace != "" {
		ws, err := workspace.New(cfg.Workspace)
		if err != nil {
			return nil, err
		}
		s.OutputRoot = ws.OutputRoot()
		s.Manifest = ws.ManifestPath()
	}

	if s.OutputRoot == "" {
		return nil, fmt.Errorf("no output root configured — pass --output-root or --workspace")
	}
	if s.Manifest == "" {
		return nil, fmt.Errorf("no manifest configured — pass --manifest or --workspace")
	}

	if s.OutputRoot, err = filepath.Abs(s.OutputRoot); err != nil {
		return nil, fmt.Errorf("resolving output root: %w", err)
	}
	detail("output root: %s", s.OutputRoot)
	detail("manifest:    %s", s.Manifest)
	return s, nil
}

// newSerializer returns a manifest serializer for the configured output root.
func newSerializer(s *settings) *manifest.Serializer {
	return manifest.New(s.OutputRoot)
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
