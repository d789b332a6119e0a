// filepath: internal/services/storage_service.go
package services

import (
	"fmt"
	"io"
	"path"
	"strings"

	"horizonlib/internal/config"
	"horizonlib/internal/logging"
	"horizonlib/internal/storage"
)

// URL prefix under which stored covers are served back.
const uploadsURLPrefix = "/uploads/"

var _ StorageService = (*storageService)(nil)

// storageService stores cover images on the local filesystem.
type storageService struct {
	cfg *config.Config
}

// NewStorageService creates a new StorageService backed by cfg's upload dir.
func NewStorageService(cfg *config.Config) *storageService {
	return &storageService{cfg: cfg}
}

// SaveCover streams the file to the upload directory under a fresh unique
// name and returns the URL path it will be served under.
func (s *storageService) SaveCover(file io.Reader, ext string) (string, error) {
	filename := storage.NewCoverFilename(ext)
	filePath, err := storage.GetCoverPath(s.cfg.Storage.UploadDir, filename)
	if err != nil {
		return "", err
	}

	size, err := storage.SaveFile(file, filePath)
	if err != nil {
		return "", err
	}

	logging.Log.Debugf("StorageService: saved cover '%s' (%d bytes)", filename, size)
	return uploadsURLPrefix + filename, nil
}

// DeleteCover removes the stored file behind a cover URL.
func (s *storageService) DeleteCover(url string) error {
	if !strings.HasPrefix(url, uploadsURLPrefix) {
		return fmt.Errorf("not an uploaded cover url: %s", url)
	}

	filename := path.Base(strings.TrimPrefix(url, uploadsURLPrefix))
	filePath, err := storage.GetCoverPath(s.cfg.Storage.UploadDir, filename)
	if err != nil {
		return err
	}
	return storage.DeleteFile(filePath)
}
