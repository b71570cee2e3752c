// Package filex contains filesystem helpers for client-side files
// (the local database and exported reports).
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold path, if needed,
// and returns the absolute form of path.
func EnsureParentDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", path, err)
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return abs, nil
}

// WriteFile writes data to path, creating parent directories first.
func WriteFile(path string, data []byte) error {
	abs, err := EnsureParentDir(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(abs, data, 0o640); err != nil {
		return fmt.Errorf("write %s: %w", abs, err)
	}
	return nil
}
