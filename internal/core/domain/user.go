package domain

import "time"

// User models a registered account. A record is created once at signup and is
// immutable afterwards; there are no update or delete operations.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
