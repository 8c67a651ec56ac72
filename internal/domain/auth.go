// File: internal/domain/auth.go
package domain

// TokenResponse is the POST /auth/login response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user,omitempty"`
}

// ChatResponse is the POST /chat response body. Guest turns carry no
// conversation id and are not persisted server-side.
type ChatResponse struct {
	Answer         string `json:"answer"`
	ConversationID int64  `json:"conversation_id"`
	Guest          bool   `json:"guest"`
}
