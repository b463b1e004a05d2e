package repository

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/momhive/momhive/internal/db"
	"github.com/momhive/momhive/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	database, err := db.Open("sqlite", conn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func createUser(t *testing.T, users UserRepository, username string) *model.User {
	t.Helper()

	user := &model.User{Username: username, PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	err := users.Create(user)
	if err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return user
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)

	first := createUser(t, users, "anna")
	if first.ID == 0 {
		t.Fatal("expected ID to be assigned")
	}

	var before, after int
	err := database.Get(&before, `SELECT COUNT(*) FROM users`)
	if err != nil {
		t.Fatalf("count: %v", err)
	}

	err = users.Create(&model.User{Username: "anna", PasswordHash: "other", CreatedAt: time.Now().UTC()})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	err = database.Get(&after, `SELECT COUNT(*) FROM users`)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if before != after {
		t.Errorf("row count changed from %d to %d", before, after)
	}
}

func TestUserRepository_ByUsername(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)

	created := createUser(t, users, "bea")

	got, err := users.ByUsername("bea")
	if err != nil {
		t.Fatalf("by username: %v", err)
	}
	if got.ID != created.ID || got.PasswordHash != "hash" {
		t.Errorf("unexpected user %+v", got)
	}

	_, err = users.ByUsername("nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMoodRepository_Ordering(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)
	moods := NewMoodRepository(database)
	createUser(t, users, "cara")
	createUser(t, users, "dina")

	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	for i, mood := range []int{3, 5, 7, 9} {
		err := moods.Create(&model.MoodEntry{Username: "cara", Mood: mood, Date: base.Add(time.Duration(i) * time.Hour)})
		if err != nil {
			t.Fatalf("create mood: %v", err)
		}
	}
	err := moods.Create(&model.MoodEntry{Username: "dina", Mood: 1, Date: base})
	if err != nil {
		t.Fatalf("create mood: %v", err)
	}

	latest, err := moods.Latest("cara")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.Mood != 9 {
		t.Errorf("latest mood = %d, want 9", latest.Mood)
	}

	recent, err := moods.Recent("cara", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 || recent[0].Mood != 9 || recent[1].Mood != 7 {
		t.Errorf("recent = %v, want [9 7]", moodValues(recent))
	}

	all, err := moods.All("cara")
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if got := moodValues(all); len(got) != 4 || got[0] != 3 || got[3] != 9 {
		t.Errorf("all = %v, want [3 5 7 9]", got)
	}

	_, err = moods.Latest("nobody")
	if !errors.Is(err, ErrMoodNotFound) {
		t.Errorf("expected ErrMoodNotFound, got %v", err)
	}
}

func TestScreeningRepository_Latest(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)
	screenings := NewScreeningRepository(database)
	createUser(t, users, "eve")

	_, err := screenings.Latest("eve")
	if !errors.Is(err, ErrScreeningNotFound) {
		t.Fatalf("expected ErrScreeningNotFound, got %v", err)
	}

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	for i, score := range []int{8, 16} {
		err := screenings.Create(&model.ScreeningEntry{Username: "eve", Score: score, Date: base.Add(time.Duration(i) * time.Minute)})
		if err != nil {
			t.Fatalf("create screening: %v", err)
		}
	}

	latest, err := screenings.Latest("eve")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.Score != 16 {
		t.Errorf("latest score = %d, want 16", latest.Score)
	}
}

func TestPhotoRepository_UpsertReplacesSameFilename(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)
	photos := NewPhotoRepository(database)
	createUser(t, users, "fay")

	for _, path := range []string{"a/first.png", "a/second.png"} {
		err := photos.Upsert(&model.Photo{
			ID:          path,
			Username:    "fay",
			Filename:    "beach.png",
			MimeType:    "image/png",
			StoragePath: path,
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	list, err := photos.Photos("fay")
	if err != nil {
		t.Fatalf("photos: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 photo, got %d", len(list))
	}
	if list[0].StoragePath != "a/second.png" {
		t.Errorf("storage path = %q, want a/second.png", list[0].StoragePath)
	}

	_, err = photos.ByFilename("fay", "missing.png")
	if !errors.Is(err, ErrPhotoNotFound) {
		t.Errorf("expected ErrPhotoNotFound, got %v", err)
	}
}

func moodValues(entries []*model.MoodEntry) []int {
	values := make([]int, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.Mood)
	}
	return values
}
