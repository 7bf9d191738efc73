package model

import "time"

// RefreshToken is persisted refresh token entity
type RefreshToken struct {
	ID          string
	UserID      string
	Fingerprint string
	ExpiresIn   int
	CreatedAt   time.Time
}
