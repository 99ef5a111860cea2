package logging

import (
	"os"
	"path/filepath"
)

// projectRootMarkers identify a project root during the upward search.
var projectRootMarkers = []string{"go.mod", ".git"}

// FindProjectRoot walks from the working directory toward the filesystem
// root looking for a directory containing go.mod or .git. Falls back to
// the working directory when no marker is found, and to "" when the
// working directory itself cannot be determined.
func FindProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findProjectRootFrom(dir)
}

func findProjectRootFrom(start string) string {
	dir := start
	for {
		for _, marker := range projectRootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}
