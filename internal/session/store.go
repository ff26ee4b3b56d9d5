package session

import (
	"time"

	"dmdstore-be/internal/user"
)

// DefaultTTL matches the 7-day session cookie lifetime.
const DefaultTTL = 7 * 24 * time.Hour

// Identity is the logged-in principal bound to a session token.
type Identity struct {
	UserID int       `json:"id"`
	Login  string    `json:"login"`
	Role   user.Role `json:"role"`
}

// Store maps opaque tokens to identities. The in-memory implementation
// is the default; a distributed backing store can replace it without
// touching handler logic.
type Store interface {
	Create(identity Identity) (string, error)
	Get(token string) (Identity, bool)
	Delete(token string)
	Close()
}
