package model

import "time"

const JournalExt = ".txt"

type JournalFile struct {
	Filename   string // sanitized, including extension
	Content    string
	ModifiedAt time.Time
}
