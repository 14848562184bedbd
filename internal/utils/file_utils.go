package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

func EnsureDirectory(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// WriteFile writes content to filePath, creating parent directories.
// An existing file is truncated and replaced.
func WriteFile(filePath string, content []byte) error {
	if err := EnsureDirectory(filepath.Dir(filePath)); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	return os.WriteFile(filePath, content, 0644)
}
