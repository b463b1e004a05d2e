package model

import (
	"time"
)

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Age          int       `db:"age"`
	Gender       string    `db:"gender"`
	Address      string    `db:"address"`
	Married      bool      `db:"married"`
	Working      bool      `db:"working"`
	Contact      string    `db:"contact"`
	Partner      string    `db:"partner"`
	DOB          string    `db:"dob"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
