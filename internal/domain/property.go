package domain

import "time"

// Property is a listing owned by a registered user.
type Property struct {
	ID         string
	OwnerID    string
	Title      string
	Address    string
	PriceCents int64
	CreatedAt  time.Time
}
