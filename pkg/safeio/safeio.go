// Package safeio guards filesystem writes against path traversal. Download
// destinations are derived from remote manifest entries, so every write is
// containment-checked against the project font directory first.
package safeio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ContainedPath resolves path against baseDir and verifies the result stays
// inside baseDir. Returns the absolute path on success.
func ContainedPath(baseDir, path string) (string, error) {
	baseAbs, err := filepath.Abs(baseDir)
	if err != nil {
		return "", errors.New("failed to resolve base directory")
	}
	pathAbs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.New("failed to resolve target path")
	}

	rel, err := filepath.Rel(baseAbs, pathAbs)
	if err != nil {
		return "", errors.New("failed to compute relative path")
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.New("target path is outside base directory")
	}
	return pathAbs, nil
}

// WriteFileContained writes data to path only if path is contained within
// baseDir, creating missing parent directories beneath it.
func WriteFileContained(baseDir, path string, data []byte) error {
	target, err := ContainedPath(baseDir, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	// #nosec G304 -- target has been verified to be contained within baseDir
	return os.WriteFile(target, data, 0o644)
}
