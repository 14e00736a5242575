package entity

import (
	"time"
)

// Session is the stored identity snapshot behind an opaque bearer token.
// Restoring a session trusts this snapshot as-is; the user document is not
// re-read from the document store.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
