package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/momhive/momhive/internal/db"
	"github.com/momhive/momhive/internal/repository"
	"github.com/momhive/momhive/internal/validation"
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

func newAuthService(database *sqlx.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(database), "test-secret", time.Hour, false)
}

func signup(t *testing.T, auth *AuthService, username string) {
	t.Helper()

	_, err := auth.Signup(&validation.SignupForm{Username: username, Password: "pw-" + username})
	if err != nil {
		t.Fatalf("signup %q: %v", username, err)
	}
}
