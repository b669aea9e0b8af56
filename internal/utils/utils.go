package utils

import (
	"cmp"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// SafeInt64ToUint64 converts an int64 value to an uint64 safely,
// clamping negative values to zero.
func SafeInt64ToUint64(val int64) uint64 {
	if val < 0 {
		return 0
	}

	return uint64(val)
}

// TrimExtension removes the trailing extension from a filename.
// Only the last extension is removed: "a.tar.gz" becomes "a.tar".
func TrimExtension(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// IsPathExist reports whether anything (file or directory) exists at path.
func IsPathExist(fs afero.Fs, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// UniquePath returns path itself when nothing exists there,
// otherwise the first free "name_N.ext" sibling. The boolean reports whether the name changed.
func UniquePath(fs afero.Fs, path string) (string, bool, error) {
	exists, err := IsPathExist(fs, path)
	if err != nil {
		return "", false, err
	}

	if !exists {
		return path, false, nil
	}

	var (
		dir  = filepath.Dir(path)
		name = filepath.Base(path)
		ext  = filepath.Ext(name)
		base = strings.TrimSuffix(name, ext)
	)

	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, i, ext))

		exists, err = IsPathExist(fs, candidate)
		if err != nil {
			return "", false, err
		}

		if !exists {
			return candidate, true, nil
		}
	}
}

// IsWithinDir reports whether target, once cleaned, stays inside dir.
func IsWithinDir(dir, target string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(target))
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// SortedKeys returns the keys of a set in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}

// Map applies a transformation function to each element of a slice and returns a new slice with the results.
func Map[E, S any](v []E, transformFunc func(E) S) []S {
	result := make([]S, len(v))
	for i := range v {
		result[i] = transformFunc(v[i])
	}

	return result
}
