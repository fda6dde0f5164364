package dto

// Auth Request DTOs

// LoginRequest contains login credentials
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest contains user registration data
type RegisterRequest struct {
	FirstName   string `json:"firstName" validate:"required,min=1,max=100"`
	LastName    string `json:"lastName" validate:"omitempty,max=100"`
	Username    string `json:"username" validate:"required,min=3,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,phone_number"`
}

// RefreshTokenRequest carries the refresh token for rotation and logout
type RefreshTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// Auth Response DTOs

// TokenResponse is returned by login, signup and refreshToken. Token is the
// refresh token.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	Token       string `json:"token"`
	Username    string `json:"username,omitempty"`
}

// HasTokens reports whether both tokens are present
func (r TokenResponse) HasTokens() bool {
	return r.AccessToken != "" && r.Token != ""
}
