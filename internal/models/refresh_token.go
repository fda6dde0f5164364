package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshToken is the devserver's record of an issued refresh token. Only the
// SHA-256 of the raw token is stored; lookups go through HashRefreshToken.
type RefreshToken struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time  `gorm:"not null;index" json:"expires_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
}

// HashRefreshToken returns the hex SHA-256 digest under which a raw token is stored
func HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// NewRefreshToken builds the stored record for a freshly issued raw token
func NewRefreshToken(userID uuid.UUID, raw string, expiresAt time.Time) *RefreshToken {
	return &RefreshToken{
		UserID:    userID,
		TokenHash: HashRefreshToken(raw),
		ExpiresAt: expiresAt,
	}
}

func (rt *RefreshToken) Revoked() bool {
	return rt.RevokedAt != nil
}

// UsableBy reports whether the token may be exchanged by userID at now: it
// must belong to that user, be unrevoked and not yet expired. A token is
// expired at its ExpiresAt instant.
func (rt *RefreshToken) UsableBy(userID uuid.UUID, now time.Time) bool {
	if rt.UserID != userID || rt.Revoked() {
		return false
	}
	return now.Before(rt.ExpiresAt)
}

func (rt *RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) BeforeCreate(tx *gorm.DB) error {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	return nil
}
