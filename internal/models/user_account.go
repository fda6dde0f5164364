package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUsernameRequired = errors.New("username is required")

// UserAccount is a registered user held by the development backend
type UserAccount struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string    `gorm:"type:varchar(100)" json:"last_name"`
	PhoneNumber  string    `gorm:"type:varchar(20)" json:"phone_number"`
	ProfilePic   string    `gorm:"type:text" json:"profile_pic"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (u *UserAccount) TableName() string {
	return "user_accounts"
}

func (u *UserAccount) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Username = strings.TrimSpace(u.Username)
	if u.Username == "" {
		return ErrUsernameRequired
	}
	return nil
}

// Profile renders the account as the public user profile
func (u *UserAccount) Profile() User {
	return User{
		UserID:      u.ID.String(),
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Username:    u.Username,
		PhoneNumber: u.PhoneNumber,
		Email:       u.Email,
		ProfilePic:  u.ProfilePic,
	}
}
