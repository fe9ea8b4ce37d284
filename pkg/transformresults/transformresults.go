// Package transformresults provides the public Go library API for
// transform-results.
//
// A transformation run records what it produced with a Builder; the cache
// layer persists the frozen Result with WriteFile and, on a later hit, reads
// it back with ReadFile and resolves it into concrete locations.
//
// # Basic Usage
//
//	b := transformresults.NewBuilder(outputRoot)
//	_ = b.AddInputArtifact()
//	_ = b.AddOutput(filepath.Join(outputRoot, "classes", "Foo.bin"))
//	r, err := b.Build()
//
//	// Persist after a successful run
//	err = transformresults.WriteFile(manifestPath, outputRoot, r)
//
//	// On a cache hit
//	r, err = transformresults.ReadFile(manifestPath, outputRoot)
//	files, err := r.Resolve(inputArtifact)
//
// Callers must serialize access to a manifest and treat any ReadFile error
// as a cache miss.
package transformresults

import (
	"github.com/bianoble/transform-results/internal/manifest"
	"github.com/bianoble/transform-results/internal/pathnorm"
	"github.com/bianoble/transform-results/internal/result"
	"github.com/bianoble/transform-results/internal/workspace"
)

type (
	// Result is the frozen, ordered outcome of a transformation.
	Result = result.Result
	// Element is one entry of a Result.
	Element = result.Element
	// Kind identifies the variant of an Element.
	Kind = result.Kind
	// Builder accumulates elements in call order.
	Builder = result.Builder
	// Visitor receives the elements of a Result in order.
	Visitor = result.Visitor
	// Workspace is the directory of one transformation invocation.
	Workspace = workspace.Workspace

	// ParseError reports a manifest line that cannot be decoded.
	ParseError = manifest.ParseError
	// IOError reports a failure to read or write a manifest.
	IOError = manifest.IOError
	// ContainmentError reports an output location outside the output root.
	ContainmentError = pathnorm.ContainmentError
)

// Element kinds.
const (
	InputWhole     = result.InputWhole
	InputRelative  = result.InputRelative
	OutputRoot     = result.OutputRoot
	OutputRelative = result.OutputRelative
)

// Sentinel errors.
var (
	ErrBuilderFrozen = result.ErrBuilderFrozen
	ErrEmptyPath     = result.ErrEmptyPath
	ErrLineBreak     = result.ErrLineBreak
	ErrPathNotUTF8   = result.ErrNotUTF8
	ErrNotUTF8       = manifest.ErrNotUTF8
)

// NewBuilder returns a Builder for outputs under outputRoot.
func NewBuilder(outputRoot string) *Builder {
	return result.NewBuilder(outputRoot)
}

// WriteFile replaces the manifest at target with r.
func WriteFile(target, outputRoot string, r *Result) error {
	return manifest.New(outputRoot).WriteFile(target, r)
}

// ReadFile decodes the manifest at path against outputRoot.
func ReadFile(path, outputRoot string) (*Result, error) {
	return manifest.New(outputRoot).ReadFile(path)
}

// OpenWorkspace opens (creating if needed) the workspace at dir.
func OpenWorkspace(dir string) (*Workspace, error) {
	return workspace.New(dir)
}
