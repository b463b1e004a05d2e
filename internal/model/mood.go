package model

import "time"

// MoodEntry is one self-reported mood value. Entries are append-only.
type MoodEntry struct {
	ID       int64     `db:"id"`
	Username string    `db:"username"`
	Mood     int       `db:"mood"`
	Date     time.Time `db:"date"`
}
