package sessions

import "time"

// Session represents a logged-in browser session. The ID is an opaque
// identifier carried inside the signed session cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
