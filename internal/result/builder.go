package result

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bianoble/transform-results/internal/pathnorm"
)

var (
	// ErrBuilderFrozen is returned by a Builder after Build has been called.
	ErrBuilderFrozen = errors.New("result builder already built")

	// ErrEmptyPath is returned when an input-relative path is empty.
	// Use AddInputArtifact for the whole artifact instead.
	ErrEmptyPath = errors.New("relative input path must not be empty")

	// ErrLineBreak is returned for paths that cannot be stored on one
	// manifest line.
	ErrLineBreak = errors.New("path must not contain line breaks")

	// ErrNotUTF8 is returned for paths that are not valid UTF-8; manifests
	// are UTF-8 text and could not be read back.
	ErrNotUTF8 = errors.New("path is not valid UTF-8")
)

// Builder accumulates elements in call order. It is not safe for concurrent
// use and must not be reused after Build.
type Builder struct {
	outputRoot string
	elements   []Element
	built      bool
}

// NewBuilder returns a Builder for outputs under outputRoot.
func NewBuilder(outputRoot string) *Builder {
	return &Builder{outputRoot: outputRoot}
}

// AddInputArtifact appends a reference to the whole input artifact.
func (b *Builder) AddInputArtifact() error {
	if b.built {
		return ErrBuilderFrozen
	}
	b.elements = append(b.elements, Element{Kind: InputWhole})
	return nil
}

// AddInputArtifactPath appends a reference to relativePath inside the input
// artifact.
func (b *Builder) AddInputArtifactPath(relativePath string) error {
	if b.built {
		return ErrBuilderFrozen
	}
	if relativePath == "" {
		return ErrEmptyPath
	}
	if err := checkStorable(relativePath); err != nil {
		return err
	}
	if err := pathnorm.CheckCanonical(relativePath); err != nil {
		return fmt.Errorf("adding input path: %w", err)
	}
	b.elements = append(b.elements, Element{Kind: InputRelative, Path: relativePath})
	return nil
}

// AddOutput appends location, which must be the output root or lie below it.
func (b *Builder) AddOutput(location string) error {
	if b.built {
		return ErrBuilderFrozen
	}
	rel, err := pathnorm.Relative(b.outputRoot, location)
	if err != nil {
		return fmt.Errorf("adding output: %w", err)
	}
	if rel == "" {
		b.elements = append(b.elements, Element{Kind: OutputRoot})
		return nil
	}
	if err := checkStorable(rel); err != nil {
		return fmt.Errorf("adding output '%s': %w", location, err)
	}
	if err := pathnorm.CheckCanonical(rel); err != nil {
		return fmt.Errorf("adding output '%s': %w", location, err)
	}
	b.elements = append(b.elements, Element{Kind: OutputRelative, Path: rel})
	return nil
}

// checkStorable rejects paths that cannot be written as one UTF-8 manifest
// line.
func checkStorable(p string) error {
	if !utf8.ValidString(p) {
		return ErrNotUTF8
	}
	if strings.ContainsAny(p, "\r\n") {
		return ErrLineBreak
	}
	return nil
}

// Size returns the number of elements added so far.
func (b *Builder) Size() int {
	return len(b.elements)
}

// Build freezes the accumulated elements into a Result.
func (b *Builder) Build() (*Result, error) {
	if b.built {
		return nil, ErrBuilderFrozen
	}
	b.built = true
	r := &Result{outputRoot: b.outputRoot, elements: b.elements}
	b.elements = nil
	return r, nil
}
