package models

import "time"

// Session is the server-side record behind a session cookie.
// A request without a resolvable Session is anonymous.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
