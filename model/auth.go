// api/model/auth.go
package model

import "time"

// RefreshSession is a long-lived, server-stored credential. The row is the
// system of record: rotation deletes it and inserts a replacement, logout
// deletes it outright.
type RefreshSession struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Secret    string    `json:"-" gorm:"uniqueIndex;not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the session's lifetime has elapsed.
func (s *RefreshSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// TokenPair carries a freshly minted access token plus the refresh secret
// that travels back to the client as a cookie, never in the body.
type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	TokenType        string    `json:"token_type"`
	RefreshSecret    string    `json:"-"`
	RefreshExpiresAt time.Time `json:"-"`
}
