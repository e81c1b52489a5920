package scanner

import (
	"os"
	"path/filepath"
)

// FindFirst returns the first of names that exists as a regular file
// directly under root, along with whether anything matched. No recursion
// and no glob matching: callers list case/extension variants
// most-likely-first and the probe stops on the first hit.
func FindFirst(root string, names []string) (string, bool) {
	for _, name := range names {
		info, err := os.Stat(filepath.Join(root, name))
		if err == nil && info.Mode().IsRegular() {
			return name, true
		}
	}
	return "", false
}

// fileExists reports whether name exists as a regular file directly
// under root.
func fileExists(root, name string) bool {
	info, err := os.Stat(filepath.Join(root, name))
	return err == nil && info.Mode().IsRegular()
}
