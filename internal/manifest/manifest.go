// Package manifest reads and writes the line-oriented text file that records
// a transformation result.
//
// Each line is one element, in result order:
//
//	i/          the whole input artifact
//	i/<path>    a path inside the input artifact
//	o/          the output root
//	o/<path>    a canonical slash-separated path below the output root
//
// The format has no header or version; changing it requires invalidating
// every stored manifest through the cache key.
package manifest

import (
	"errors"
	"fmt"
)

const (
	inputPrefix  = "i/"
	outputPrefix = "o/"
)

// ErrNotUTF8 is reported when a manifest is not valid UTF-8 text.
var ErrNotUTF8 = errors.New("manifest is not valid UTF-8 text")

var errUnknownPrefix = errors.New("expected prefix '" + inputPrefix + "' or '" + outputPrefix + "'")

// ParseError reports a manifest line with an unrecognized prefix or an
// unusable path. Line is 1-based.
type ParseError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	where := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		where = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("cannot parse result path string %q at %s: %v", e.Text, where, e.Err)
	}
	return fmt.Sprintf("cannot parse result path string %q at %s", e.Text, where)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError reports a failure to read, write, or decode the manifest file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s manifest: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s manifest %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Serializer encodes and decodes results for one output root.
type Serializer struct {
	outputRoot string
}

// New returns a Serializer for results whose outputs live under outputRoot.
func New(outputRoot string) *Serializer {
	return &Serializer{outputRoot: outputRoot}
}

// OutputRoot returns the configured output root.
func (s *Serializer) OutputRoot() string {
	return s.outputRoot
}
