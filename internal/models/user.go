package models

import "strings"

// User is the profile returned by user/v1/getUser
type User struct {
	UserID      string `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	Username    string `json:"username,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Email       string `json:"email,omitempty"`
	ProfilePic  string `json:"profile_pic,omitempty"`
}

// FullName returns first and last name joined by a space
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
