package models

import "time"

// StoredCredential is one row of the local key/value credential store
type StoredCredential struct {
	Name      string    `gorm:"type:varchar(64);primaryKey" json:"name"`
	Value     string    `gorm:"type:text;not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (StoredCredential) TableName() string {
	return "credentials"
}
