package session

import "time"

// Record сохраненная сессия
type Record struct {
	ID        string
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}
