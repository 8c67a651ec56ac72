// File: internal/api/auth.go
package api

import (
	"context"
	"net/url"

	"github.com/vuhp/go-helpdesk/internal/domain"
)

// Login exchanges credentials for a bearer token. The endpoint expects
// form-encoded fields, OAuth2 password-flow style.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var token domain.TokenResponse
	if err := c.doForm(ctx, "POST", "/auth/login", form, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	var user domain.User
	err := c.doJSON(ctx, "POST", "/auth/register", registerRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, false, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
