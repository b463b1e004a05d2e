package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/momhive/momhive/internal/model"
)

var (
	ErrPhotoNotFound = errors.New("photo not found")
)

type PhotoRepository interface {
	// Upsert stores photo, replacing any existing row with the same
	// (username, filename).
	Upsert(photo *model.Photo) error
	ByFilename(username, filename string) (*model.Photo, error)
	Photos(username string) ([]*model.Photo, error)
}

type photoRepository struct {
	db *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Upsert(photo *model.Photo) error {
	query := `INSERT INTO photos (id, username, filename, mime_type, size, storage_path, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (username, filename) DO UPDATE
	          SET mime_type = excluded.mime_type, size = excluded.size, storage_path = excluded.storage_path, created_at = excluded.created_at`

	_, err := r.db.Exec(query,
		photo.ID,
		photo.Username,
		photo.Filename,
		photo.MimeType,
		photo.Size,
		photo.StoragePath,
		photo.CreatedAt,
	)

	return err
}

func (r *photoRepository) ByFilename(username, filename string) (*model.Photo, error) {
	photo := &model.Photo{}
	query := `SELECT * FROM photos WHERE username = $1 AND filename = $2`

	err := r.db.Get(photo, query, username, filename)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPhotoNotFound
	}
	if err != nil {
		return nil, err
	}

	return photo, nil
}

func (r *photoRepository) Photos(username string) ([]*model.Photo, error) {
	var photos []*model.Photo
	query := `SELECT * FROM photos WHERE username = $1 ORDER BY created_at DESC`

	err := r.db.Select(&photos, query, username)
	if err != nil {
		return nil, err
	}

	return photos, nil
}
