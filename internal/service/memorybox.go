package service

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/momhive/momhive/internal/model"
	"github.com/momhive/momhive/internal/repository"
	"github.com/momhive/momhive/internal/storage"
	"github.com/momhive/momhive/internal/validation"
)

var ErrInvalidPhoto = errors.New("invalid photo")

type MemoryBoxService struct {
	photoRepository repository.PhotoRepository
	storage         storage.Storage
}

func NewMemoryBoxService(photoRepository repository.PhotoRepository, storage storage.Storage) *MemoryBoxService {
	return &MemoryBoxService{
		photoRepository: photoRepository,
		storage:         storage,
	}
}

// Upload stores the photo under its sanitized name; the same name overwrites
func (s *MemoryBoxService) Upload(username string, header *multipart.FileHeader) (*model.Photo, error) {
	filename := validation.SecureFilename(header.Filename)
	if filename == "" {
		return nil, fmt.Errorf("%w: filename is empty", ErrInvalidPhoto)
	}

	mimeType, err := validation.ValidateUpload(header, validation.PhotoConstraints)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPhoto, err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	storagePath := path.Join("memory_box", UserKey(username), filename)

	// a replaced photo keeps its file if the new record can't be written
	_, err = s.photoRepository.ByFilename(username, filename)
	replacing := err == nil
	if err != nil && !errors.Is(err, repository.ErrPhotoNotFound) {
		return nil, fmt.Errorf("failed to look up photo: %w", err)
	}

	err = s.storage.Save(storagePath, file)
	if err != nil {
		return nil, fmt.Errorf("failed to save photo: %w", err)
	}

	photo := &model.Photo{
		ID:          uuid.New().String(),
		Username:    username,
		Filename:    filename,
		MimeType:    mimeType,
		Size:        header.Size,
		StoragePath: storagePath,
		CreatedAt:   time.Now().UTC(),
	}

	err = s.photoRepository.Upsert(photo)
	if err != nil {
		if !replacing {
			delErr := s.storage.Delete(storagePath)
			if delErr != nil {
				slog.Error("failed to delete photo from storage during cleanup", "error", delErr, "path", storagePath)
			}
		}
		return nil, fmt.Errorf("failed to save photo record: %w", err)
	}

	photo.URL = s.storage.URL(storagePath)
	return photo, nil
}

// Photos lists the user's photos, newest first, with browser URLs filled in
func (s *MemoryBoxService) Photos(username string) ([]*model.Photo, error) {
	photos, err := s.photoRepository.Photos(username)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}

	for _, p := range photos {
		p.URL = s.storage.URL(p.StoragePath)
	}
	return photos, nil
}
