package storage

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/BerylCAtieno/pdf-summarizer/internal/config"
)

// Storage holds uploaded documents for the lifetime of a single request.
type Storage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

var ErrNotFound = errors.New("object not found")

// New builds the backend selected by cfg.UploadBackend.
func New(cfg *config.Config) (Storage, error) {
	if cfg.UploadBackend == config.BackendS3 {
		return NewS3Storage(cfg)
	}
	return NewLocalStorage(cfg.UploadDir)
}

// UploadKey derives a per-request key from the client filename. The random
// prefix keeps two uploads with the same name from overwriting each other.
func UploadKey(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		name = "upload.pdf"
	}
	return uuid.NewString() + "-" + name
}
