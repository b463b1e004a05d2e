package model

import (
	"time"
)

// Photo is a memory box picture. Identity within a user's box is Filename.
type Photo struct {
	ID          string    `db:"id"`
	Username    string    `db:"username"`
	Filename    string    `db:"filename"` // sanitized
	MimeType    string    `db:"mime_type"`
	Size        int64     `db:"size"`
	StoragePath string    `db:"storage_path"`
	CreatedAt   time.Time `db:"created_at"`

	// Computed fields (not in database)
	URL string `db:"-"`
}
