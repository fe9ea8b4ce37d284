package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bianoble/transform-results/internal/pathnorm"
	"github.com/bianoble/transform-results/internal/result"
)

// Encode writes r to w, one line per element.
func (s *Serializer) Encode(w io.Writer, r *result.Result) error {
	data, err := s.Marshal(r)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return &IOError{Op: "writing", Err: err}
	}
	return nil
}

// Marshal returns the manifest content for r.
func (s *Serializer) Marshal(r *result.Result) ([]byte, error) {
	var buf bytes.Buffer
	for i := 0; i < r.Len(); i++ {
		line, err := s.encodeElement(r, r.At(i))
		if err != nil {
			return nil, fmt.Errorf("encoding element %d: %w", i, err)
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func (s *Serializer) encodeElement(r *result.Result, e result.Element) (string, error) {
	switch e.Kind {
	case result.InputWhole:
		return inputPrefix, nil
	case result.InputRelative:
		return inputPrefix + e.Path, nil
	case result.OutputRoot, result.OutputRelative:
		loc, err := r.OutputLocation(e)
		if err != nil {
			return "", err
		}
		rel, err := pathnorm.Relative(s.outputRoot, loc)
		if err != nil {
			return "", err
		}
		return outputPrefix + rel, nil
	default:
		return "", fmt.Errorf("unknown element kind %s", e.Kind)
	}
}

// WriteFile replaces target with the manifest for r. The content is written
// to a temp file in the same directory and renamed over target, so readers
// see either the old manifest or the complete new one. The parent directory
// must already exist.
func (s *Serializer) WriteFile(target string, r *result.Result) error {
	data, err := s.Marshal(r)
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, ".results-*.tmp")
	if err != nil {
		return &IOError{Op: "writing", Path: target, Err: err}
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return &IOError{Op: "writing", Path: target, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &IOError{Op: "syncing", Path: target, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "closing", Path: target, Err: err}
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return &IOError{Op: "writing", Path: target, Err: err}
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return &IOError{Op: "renaming", Path: target, Err: err}
	}

	success = true
	return nil
}
