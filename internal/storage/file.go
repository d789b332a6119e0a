// filepath: internal/storage/file.go
// Package storage provides functionality for storing and managing
// uploaded cover image files.
package storage

import (
	"fmt"
	"io"
	"os"
)

// SaveFile saves file data from a reader to a specified path.
// It streams the file to avoid loading it entirely into memory.
func SaveFile(fileData io.Reader, path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("could not create file: %w", err)
	}
	defer f.Close()

	fileSize, err := io.Copy(f, fileData)
	if err != nil {
		return 0, fmt.Errorf("could not write file: %w", err)
	}

	return fileSize, nil
}

// DeleteFile removes a stored file. Missing files are not an error; the
// cleanup path may run after a failed save.
func DeleteFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not delete file: %w", err)
	}
	return nil
}
