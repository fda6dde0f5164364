package models

// SessionStatus is a state of the authentication state machine
type SessionStatus string

const (
	SessionChecking        SessionStatus = "checking"
	SessionAuthenticated   SessionStatus = "authenticated"
	SessionUnauthenticated SessionStatus = "unauthenticated"
)

// SessionState is the snapshot published to session observers
type SessionState struct {
	Status    SessionStatus `json:"status"`
	Username  string        `json:"username,omitempty"`
	IsLoading bool          `json:"is_loading"`
}

// InitialSessionState is the state before the startup check completes
func InitialSessionState() SessionState {
	return SessionState{Status: SessionChecking, IsLoading: true}
}

func (s SessionState) IsAuthenticated() bool {
	return s.Status == SessionAuthenticated
}

// Credential keys held by the token store
const (
	CredentialAccessToken  = "accessToken"
	CredentialRefreshToken = "token"
	CredentialUsername     = "username"
)

// CredentialKeys lists every key the session owns
func CredentialKeys() []string {
	return []string{CredentialAccessToken, CredentialRefreshToken, CredentialUsername}
}

// Credentials is the triple persisted after a successful login or signup
type Credentials struct {
	AccessToken  string
	RefreshToken string
	Username     string
}

// Complete reports whether all three parts are present
func (c Credentials) Complete() bool {
	return c.AccessToken != "" && c.RefreshToken != "" && c.Username != ""
}
