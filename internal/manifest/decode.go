package manifest

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/bianoble/transform-results/internal/pathnorm"
	"github.com/bianoble/transform-results/internal/result"
)

// ReadFile decodes the manifest at path. Any unreadable file or bad line
// fails the whole read; no partial result is returned.
func (s *Serializer) ReadFile(path string) (*result.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "reading", Path: path, Err: err}
	}
	return s.unmarshal(path, data)
}

// Decode reads a manifest from rd.
func (s *Serializer) Decode(rd io.Reader) (*result.Result, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, &IOError{Op: "reading", Err: err}
	}
	return s.unmarshal("", data)
}

// Unmarshal decodes manifest content held in memory.
func (s *Serializer) Unmarshal(data []byte) (*result.Result, error) {
	return s.unmarshal("", data)
}

func (s *Serializer) unmarshal(path string, data []byte) (*result.Result, error) {
	if !utf8.Valid(data) {
		return nil, &IOError{Op: "decoding", Path: path, Err: ErrNotUTF8}
	}

	lines := splitLines(string(data))
	b := result.NewBuilder(s.outputRoot)
	for i, line := range lines {
		if err := s.decodeLine(b, line); err != nil {
			return nil, &ParseError{Path: path, Line: i + 1, Text: line, Err: err}
		}
	}
	return b.Build()
}

func (s *Serializer) decodeLine(b *result.Builder, line string) error {
	switch {
	case strings.HasPrefix(line, outputPrefix):
		loc, err := pathnorm.Resolve(s.outputRoot, line[len(outputPrefix):])
		if err != nil {
			return err
		}
		return b.AddOutput(loc)
	case strings.HasPrefix(line, inputPrefix):
		rel := line[len(inputPrefix):]
		if rel == "" {
			return b.AddInputArtifact()
		}
		return b.AddInputArtifactPath(rel)
	default:
		return errUnknownPrefix
	}
}

// splitLines splits on "\n", "\r\n" and "\r". A terminator on the last line
// does not produce an extra empty line.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
