package models

import "time"

// JournalEntry is immutable once created; the current surface only
// appends and reads, never edits.
type JournalEntry struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
