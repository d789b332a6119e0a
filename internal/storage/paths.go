// internal/storage/paths.go
// Path generation for uploaded cover images.
package storage

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewCoverFilename generates a unique filename for an uploaded cover image,
// preserving the (already validated) extension.
func NewCoverFilename(ext string) string {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader)
	return fmt.Sprintf("book-cover-%s%s", id.String(), strings.ToLower(ext))
}

// GetCoverPath returns the on-disk path for a cover filename, creating the
// upload directory if needed.
func GetCoverPath(uploadDir, filename string) (string, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("could not create upload directory: %w", err)
	}

	path := filepath.Join(uploadDir, filename)

	// Prevent path traversal via a crafted filename
	cleanedPath := filepath.Clean(path)
	cleanedRoot := filepath.Clean(uploadDir)
	if !strings.HasPrefix(cleanedPath, cleanedRoot+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid path: potential path traversal")
	}

	return cleanedPath, nil
}
