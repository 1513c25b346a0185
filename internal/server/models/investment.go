package models

import "time"

// Investment is a single holding record owned by one user.
type Investment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Amount     float64   `json:"amount"`
	InvestedAt time.Time `json:"invested_at"`
	CreatedAt  time.Time `json:"created_at"`
}
