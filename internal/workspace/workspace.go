package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bianoble/transform-results/internal/manifest"
	"github.com/bianoble/transform-results/internal/result"
)

const (
	outputDirName    = "transformed"
	manifestFileName = "results.bin"
)

// Workspace is the directory of one transformation invocation: outputs live
// under transformed/ and the result manifest sits next to it. Callers are
// responsible for serializing access to a workspace.
type Workspace struct {
	dir        string
	serializer *manifest.Serializer
}

// New opens the workspace at dir, creating dir and its output root if
// needed.
func New(dir string) (*Workspace, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace %s: %w", dir, err)
	}
	outDir := filepath.Join(abs, outputDirName)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating workspace directory %s: %w", outDir, err)
	}
	return &Workspace{dir: abs, serializer: manifest.New(outDir)}, nil
}

// DefaultDir returns the default workspace parent directory.
// Uses XDG_CACHE_HOME if set, otherwise ~/.cache/transform-results.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "transform-results")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		if runtime.GOOS == "windows" {
			return filepath.Join(os.TempDir(), "transform-results-cache")
		}
		return filepath.Join("/tmp", "transform-results-cache")
	}
	return filepath.Join(home, ".cache", "transform-results")
}

// Path returns the workspace directory.
func (w *Workspace) Path() string {
	return w.dir
}

// OutputRoot returns the directory transformation outputs are written to.
func (w *Workspace) OutputRoot() string {
	return w.serializer.OutputRoot()
}

// ManifestPath returns the location of the result manifest.
func (w *Workspace) ManifestPath() string {
	return filepath.Join(w.dir, manifestFileName)
}

// NewBuilder returns a result builder rooted at the workspace output root.
func (w *Workspace) NewBuilder() *result.Builder {
	return result.NewBuilder(w.OutputRoot())
}

// Store persists r as the workspace manifest.
func (w *Workspace) Store(r *result.Result) error {
	return w.serializer.WriteFile(w.ManifestPath(), r)
}

// Load reads the workspace manifest.
// Returns nil, false, nil if no manifest has been stored.
// Returns an error if the manifest is unreadable or corrupt; callers treat
// that as a miss and re-run the transformation.
func (w *Workspace) Load() (*result.Result, bool, error) {
	r, err := w.serializer.ReadFile(w.ManifestPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return r, true, nil
}
