package storage

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/momhive/momhive/internal/config"
)

// Storage defines the interface for file storage operations
type Storage interface {
	// Save stores a file at the given path, replacing any existing file
	Save(path string, file io.Reader) error

	// Delete removes a file at the given path
	Delete(path string) error

	// URL returns a URL the browser can load the file from
	URL(path string) string
}

// New creates the storage backend selected by STORAGE_DRIVER
func New(c *config.Config) (Storage, error) {
	switch c.StorageDriver {
	case config.StorageDriverLocal, "":
		urlPrefix, err := c.StaticURL(c.UploadDir)
		if err != nil {
			return nil, fmt.Errorf("UPLOAD_DIR: %w", err)
		}
		slog.Info("initializing local storage", "dir", c.UploadDir, "url", urlPrefix)
		return NewLocalStorage(c.UploadDir, urlPrefix)
	case config.StorageDriverS3:
		slog.Info("initializing S3 storage",
			"bucket", c.S3Bucket,
			"region", c.S3Region,
			"endpoint", c.S3Endpoint,
		)
		return NewS3Storage(S3Config{
			Region:        c.S3Region,
			Bucket:        c.S3Bucket,
			AccessKey:     c.S3AccessKey,
			SecretKey:     c.S3SecretKey,
			Endpoint:      c.S3Endpoint,
			UsePathStyle:  c.S3UsePathStyle,
			PresignExpiry: c.S3PresignExpiryPrivate,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
}
