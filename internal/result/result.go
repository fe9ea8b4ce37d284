// Package result models the ordered outputs recorded for one execution of a
// transformation.
package result

import (
	"fmt"
	"path/filepath"

	"github.com/bianoble/transform-results/internal/pathnorm"
)

// Kind identifies the variant of an Element.
type Kind int

const (
	// InputWhole refers to the entire input artifact.
	InputWhole Kind = iota + 1
	// InputRelative refers to a location inside the input artifact.
	InputRelative
	// OutputRoot refers to the output root itself.
	OutputRoot
	// OutputRelative refers to a location strictly inside the output root.
	OutputRelative
)

func (k Kind) String() string {
	switch k {
	case InputWhole:
		return "input"
	case InputRelative:
		return "input-relative"
	case OutputRoot:
		return "output"
	case OutputRelative:
		return "output-relative"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsInput reports whether k refers to the input artifact.
func (k Kind) IsInput() bool {
	return k == InputWhole || k == InputRelative
}

// Element is one entry of a Result. Path is the canonical slash-separated
// relative path for InputRelative and OutputRelative and empty otherwise.
type Element struct {
	Kind Kind
	Path string
}

func (e Element) String() string {
	if e.Path == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ":" + e.Path
}

// Visitor receives the elements of a Result in order.
type Visitor interface {
	VisitInput()
	VisitInputPath(relativePath string)
	VisitOutput(location string)
}

// Result is the frozen, ordered outcome of a transformation. The zero value
// is an empty result with no output root.
type Result struct {
	outputRoot string
	elements   []Element
}

// OutputRoot returns the output root the result was built against.
func (r *Result) OutputRoot() string {
	return r.outputRoot
}

// Len returns the number of elements.
func (r *Result) Len() int {
	return len(r.elements)
}

// At returns the i-th element.
func (r *Result) At(i int) Element {
	return r.elements[i]
}

// Elements returns a copy of the elements in order.
func (r *Result) Elements() []Element {
	out := make([]Element, len(r.elements))
	copy(out, r.elements)
	return out
}

// OutputLocation returns the absolute location of an output element.
func (r *Result) OutputLocation(e Element) (string, error) {
	switch e.Kind {
	case OutputRoot:
		return filepath.Clean(r.outputRoot), nil
	case OutputRelative:
		return pathnorm.Resolve(r.outputRoot, e.Path)
	default:
		return "", fmt.Errorf("element %s is not an output", e)
	}
}

// Visit calls v once per element, in order.
func (r *Result) Visit(v Visitor) error {
	for _, e := range r.elements {
		switch e.Kind {
		case InputWhole:
			v.VisitInput()
		case InputRelative:
			v.VisitInputPath(e.Path)
		case OutputRoot, OutputRelative:
			loc, err := r.OutputLocation(e)
			if err != nil {
				return err
			}
			v.VisitOutput(loc)
		default:
			return fmt.Errorf("unknown element kind %s", e.Kind)
		}
	}
	return nil
}

// Resolve returns the concrete locations the result stands for, in order.
// Input elements resolve against inputArtifact, outputs against the output
// root.
func (r *Result) Resolve(inputArtifact string) ([]string, error) {
	locations := make([]string, 0, len(r.elements))
	for _, e := range r.elements {
		switch e.Kind {
		case InputWhole:
			locations = append(locations, inputArtifact)
		case InputRelative:
			loc, err := pathnorm.Resolve(inputArtifact, e.Path)
			if err != nil {
				return nil, fmt.Errorf("resolving input path '%s': %w", e.Path, err)
			}
			locations = append(locations, loc)
		case OutputRoot, OutputRelative:
			loc, err := r.OutputLocation(e)
			if err != nil {
				return nil, fmt.Errorf("resolving output path '%s': %w", e.Path, err)
			}
			locations = append(locations, loc)
		default:
			return nil, fmt.Errorf("unknown element kind %s", e.Kind)
		}
	}
	return locations, nil
}

// Equal reports whether r and other hold the same elements in the same order
// against the same output root.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	if filepath.Clean(r.outputRoot) != filepath.Clean(other.outputRoot) {
		return false
	}
	if len(r.elements) != len(other.elements) {
		return false
	}
	for i := range r.elements {
		if r.elements[i] != other.elements[i] {
			return false
		}
	}
	return true
}
