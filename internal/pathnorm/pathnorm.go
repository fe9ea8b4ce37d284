// Package pathnorm converts between absolute locations under an output root
// and the canonical forward-slash relative paths stored in result manifests.
//
// Every join and split done by the codec goes through this package so the
// host separator never reaches the manifest.
package pathnorm

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ContainmentError reports a location that does not lie within the root.
type ContainmentError struct {
	Root     string
	Location string
}

func (e *ContainmentError) Error() string {
	return fmt.Sprintf("location '%s' is outside the output root '%s'", e.Location, e.Root)
}

// Contains reports whether location is root itself or lies strictly below it.
// Both paths are cleaned first; symlinks are not resolved.
func Contains(root, location string) bool {
	_, ok := relativeTo(filepath.Clean(root), filepath.Clean(location))
	return ok
}

// Relative returns location's path relative to root in canonical form:
// forward-slash separated, no leading or trailing separator, no "." or ".."
// segments. It returns "" when location equals root.
func Relative(root, location string) (string, error) {
	cleanRoot := filepath.Clean(root)
	cleanLoc := filepath.Clean(location)

	// Mixing absolute and relative locations cannot be made exact.
	if filepath.IsAbs(cleanRoot) != filepath.IsAbs(cleanLoc) {
		return "", &ContainmentError{Root: root, Location: location}
	}

	rel, ok := relativeTo(cleanRoot, cleanLoc)
	if !ok {
		return "", &ContainmentError{Root: root, Location: location}
	}
	return filepath.ToSlash(rel), nil
}

// Resolve is the inverse of Relative: it joins a canonical relative path onto
// root using the host separator. An empty rel resolves to root. Paths that are
// absolute, non-canonical, or would climb out of root are rejected.
func Resolve(root, rel string) (string, error) {
	cleanRoot := filepath.Clean(root)
	if rel == "" {
		return cleanRoot, nil
	}
	if err := CheckCanonical(rel); err != nil {
		return "", err
	}
	return filepath.Join(cleanRoot, filepath.FromSlash(rel)), nil
}

// CheckCanonical verifies that rel is already in the form Relative produces.
func CheckCanonical(rel string) error {
	if rel == "" {
		return fmt.Errorf("relative path is empty")
	}
	if strings.HasPrefix(rel, "/") || filepath.IsAbs(filepath.FromSlash(rel)) {
		return fmt.Errorf("relative path '%s' is absolute", rel)
	}
	// On POSIX a backslash is an ordinary file name character.
	if filepath.Separator == '\\' && strings.Contains(rel, `\`) {
		return fmt.Errorf("relative path '%s' contains a backslash", rel)
	}
	if path.Clean(rel) != rel {
		return fmt.Errorf("relative path '%s' is not canonical (want '%s')", rel, path.Clean(rel))
	}
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return fmt.Errorf("relative path '%s' escapes its root", rel)
	}
	return nil
}

// relativeTo returns the host-separated suffix of loc below root, or false if
// loc is not root or a descendant of it. Both arguments must be clean.
func relativeTo(root, loc string) (string, bool) {
	if loc == root {
		return "", true
	}

	// A trailing separator keeps "/out2" from matching root "/out".
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if root == "." {
		// Every clean relative path that does not climb is below ".".
		if filepath.IsAbs(loc) || loc == ".." || strings.HasPrefix(loc, ".."+string(filepath.Separator)) {
			return "", false
		}
		return loc, true
	}
	if !strings.HasPrefix(loc, prefix) {
		return "", false
	}
	return loc[len(prefix):], true
}
