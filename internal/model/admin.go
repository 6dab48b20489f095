package model

import "time"

// Admin is the single privileged principal able to manage content and
// respond to inquiries. Created once by the seed tool; immutable afterwards.
type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
