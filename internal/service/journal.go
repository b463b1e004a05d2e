package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/momhive/momhive/internal/model"
	"github.com/momhive/momhive/internal/validation"
	"github.com/natefinch/atomic"
)

var (
	ErrJournalFilenameRequired = errors.New("filename cannot be empty")
	ErrJournalNotFound         = errors.New("journal not found")
)

// JournalService keeps one text file per entry under <root>/<user key>/
type JournalService struct {
	root string
}

func NewJournalService(root string) *JournalService {
	return &JournalService{root: root}
}

func (s *JournalService) userDir(username string) string {
	return filepath.Join(s.root, UserKey(username))
}

// Save writes content to <sanitized filename>.txt, replacing any existing entry
func (s *JournalService) Save(username, filename, content string) (string, error) {
	name := validation.SecureFilename(strings.TrimSpace(filename))
	if name == "" {
		return "", ErrJournalFilenameRequired
	}
	name += model.JournalExt

	dir := s.userDir(username)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return "", fmt.Errorf("failed to create journal directory: %w", err)
	}

	err = atomic.WriteFile(filepath.Join(dir, name), strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to write journal: %w", err)
	}

	return name, nil
}

// List returns the user's entry filenames sorted by name
func (s *JournalService) List(username string) ([]string, error) {
	entries, err := os.ReadDir(s.userDir(username))
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *JournalService) Read(username, filename string) (*model.JournalFile, error) {
	p, err := s.entryPath(username, filename)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(p)
	if errors.Is(err, os.ErrNotExist) || (err == nil && !info.Mode().IsRegular()) {
		return nil, ErrJournalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat journal: %w", err)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	return &model.JournalFile{
		Filename:   filename,
		Content:    string(data),
		ModifiedAt: info.ModTime(),
	}, nil
}

func (s *JournalService) Delete(username, filename string) error {
	p, err := s.entryPath(username, filename)
	if err != nil {
		return err
	}

	err = os.Remove(p)
	if errors.Is(err, os.ErrNotExist) {
		return ErrJournalNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete journal: %w", err)
	}
	return nil
}

// entryPath only accepts names that are already sanitized
func (s *JournalService) entryPath(username, filename string) (string, error) {
	if filename == "" || validation.SecureFilename(filename) != filename {
		return "", ErrJournalNotFound
	}
	return filepath.Join(s.userDir(username), filename), nil
}
