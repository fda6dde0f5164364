package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the custom claims in issued JWT tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Username  string `json:"username,omitempty"`
	TokenType string `json:"token_type"`
}
