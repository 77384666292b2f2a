package domain

import "time"

// Session is a refresh-token session created at login and rotated on refresh.
// RefreshTokenHash stores a SHA-256 of the current refresh token; RefreshJTI
// binds the session to the latest issued refresh token for reuse detection.
type Session struct {
	ID               string
	UserID           string
	RefreshTokenHash string
	RefreshJTI       string
	ExpiresAt        time.Time
	RevokedAt        *time.Time
	LastSeenAt       *time.Time
	CreatedAt        time.Time
}

// Active reports whether the session is usable at the given time.
func (s *Session) Active(now time.Time) bool {
	if s == nil {
		return false
	}
	if s.RevokedAt != nil {
		return false
	}
	return now.Before(s.ExpiresAt)
}
