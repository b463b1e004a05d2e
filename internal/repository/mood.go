package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/momhive/momhive/internal/model"
)

var (
	ErrMoodNotFound = errors.New("mood entry not found")
)

type MoodRepository interface {
	Create(entry *model.MoodEntry) error
	Latest(username string) (*model.MoodEntry, error)
	// Recent returns up to limit entries, newest first.
	Recent(username string, limit int) ([]*model.MoodEntry, error)
	// All returns every entry for username, oldest first.
	All(username string) ([]*model.MoodEntry, error)
}

type moodRepository struct {
	db *sqlx.DB
}

func NewMoodRepository(db *sqlx.DB) MoodRepository {
	return &moodRepository{db: db}
}

func (r *moodRepository) Create(entry *model.MoodEntry) error {
	query := `INSERT INTO mood_tracker (username, mood, date) VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRow(query, entry.Username, entry.Mood, entry.Date).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to insert mood entry: %w", err)
	}

	return nil
}

func (r *moodRepository) Latest(username string) (*model.MoodEntry, error) {
	entry := &model.MoodEntry{}
	query := `SELECT * FROM mood_tracker WHERE username = $1 ORDER BY date DESC, id DESC LIMIT 1`

	err := r.db.Get(entry, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMoodNotFound
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *moodRepository) Recent(username string, limit int) ([]*model.MoodEntry, error) {
	var entries []*model.MoodEntry
	query := `SELECT * FROM mood_tracker WHERE username = $1 ORDER BY date DESC, id DESC LIMIT $2`

	err := r.db.Select(&entries, query, username, limit)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *moodRepository) All(username string) ([]*model.MoodEntry, error) {
	var entries []*model.MoodEntry
	query := `SELECT * FROM mood_tracker WHERE username = $1 ORDER BY date ASC, id ASC`

	err := r.db.Select(&entries, query, username)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
