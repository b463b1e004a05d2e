package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/momhive/momhive/internal/model"
)

var (
	ErrScreeningNotFound = errors.New("screening entry not found")
)

type ScreeningRepository interface {
	Create(entry *model.ScreeningEntry) error
	Latest(username string) (*model.ScreeningEntry, error)
}

type screeningRepository struct {
	db *sqlx.DB
}

func NewScreeningRepository(db *sqlx.DB) ScreeningRepository {
	return &screeningRepository{db: db}
}

func (r *screeningRepository) Create(entry *model.ScreeningEntry) error {
	query := `INSERT INTO epds_scores (username, score, date) VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRow(query, entry.Username, entry.Score, entry.Date).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to insert screening entry: %w", err)
	}

	return nil
}

func (r *screeningRepository) Latest(username string) (*model.ScreeningEntry, error) {
	entry := &model.ScreeningEntry{}
	query := `SELECT * FROM epds_scores WHERE username = $1 ORDER BY date DESC, id DESC LIMIT 1`

	err := r.db.Get(entry, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScreeningNotFound
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}
