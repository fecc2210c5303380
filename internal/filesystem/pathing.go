package filesystem

import (
	"path/filepath"
	"strings"

	"github.com/desertwitch/fsprobe/internal/schema"
	"github.com/spf13/afero"
)

// StartsWith is [Handler.StartsWith] against the operating system.
func StartsWith(path string, prefix string) bool {
	return NewHandler(&schema.OS{}, nil, afero.NewOsFs(), "").StartsWith(path, prefix)
}

// StartsWith reports whether path lies within prefix (or equals it).
//
// Both paths are weakly canonicalized before the comparison, which is done
// component by component: "/data/abc" does not start with "/data/ab". The
// paths do not need to exist and no error is ever returned.
func (f *Handler) StartsWith(path string, prefix string) bool {
	pathParts := splitPath(f.weaklyCanonical(path))
	prefixParts := splitPath(f.weaklyCanonical(prefix))

	if len(prefixParts) > len(pathParts) {
		return false
	}

	for i := range prefixParts {
		if pathParts[i] != prefixParts[i] {
			return false
		}
	}

	return true
}

// weaklyCanonical makes a path absolute, then resolves the longest existing
// leading portion physically (symbolic links along with any "." and ".." in
// it). The rest is appended unresolved and the result is lexically cleaned.
//
// The path is not cleaned before resolving: "link/.." is the parent of the
// link's target, not the directory holding the link.
func (f *Handler) weaklyCanonical(path string) string {
	sep := string(filepath.Separator)

	if !filepath.IsAbs(path) {
		if wd, err := f.osHandler.Getwd(); err == nil {
			path = wd + sep + path
		}
	}

	head, tail := path, ""
	for head != "" {
		if resolved, err := f.osHandler.EvalSymlinks(head); err == nil {
			return filepath.Clean(filepath.Join(resolved, tail))
		}

		i := strings.LastIndex(head, sep)
		if i < 0 || head == filepath.VolumeName(head)+sep {
			break
		}

		tail = head[i+len(sep):] + sep + tail
		head = head[:i]

		if head == filepath.VolumeName(path) {
			head += sep
		}
	}

	return filepath.Clean(path)
}

// splitPath splits a clean path into its components. The root of an absolute
// path (including any volume name) is its first component.
func splitPath(path string) []string {
	sep := string(filepath.Separator)
	volume := filepath.VolumeName(path)
	rest := path[len(volume):]

	parts := []string{}

	switch {
	case strings.HasPrefix(rest, sep):
		parts = append(parts, volume+sep)
		rest = rest[len(sep):]
	case volume != "":
		parts = append(parts, volume)
	}

	for _, part := range strings.Split(rest, sep) {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return parts
}
