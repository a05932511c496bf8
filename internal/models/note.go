package models

import "time"

// NoteDB represents a note row in the database
type NoteDB struct {
	NoteID      int64     `json:"id" db:"id"`                     // Primary key, assigned by the store
	Title       string    `json:"title" db:"title"`               // Note title
	Content     string    `json:"content" db:"content"`           // Note body
	DateCreated time.Time `json:"date_created" db:"date_created"` // Creation time in UTC, never changed
	OwnerID     int64     `json:"owner_id" db:"owner_id"`         // Identifier of the owning user
}
