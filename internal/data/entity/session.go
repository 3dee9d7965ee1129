package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session is an opaque login token. It stops authenticating once it
// expires or is revoked by logout.
type Session struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
	Token  uuid.UUID `db:"token"`
	// client that logged in, both optional
	UserAgent *string    `db:"user_agent"`
	IPAddress *string    `db:"ip_address"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

// NewSession issues a fresh token for userID that lives for ttl.
func NewSession(userID uuid.UUID, now time.Time, ttl time.Duration, userAgent, ip string) *Session {
	return &Session{
		BaseSimple: NewBaseSimple(now),
		UserID:     userID,
		Token:      uuid.New(),
		UserAgent:  nonEmpty(userAgent),
		IPAddress:  nonEmpty(ip),
		ExpiresAt:  now.Add(ttl),
	}
}

func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
