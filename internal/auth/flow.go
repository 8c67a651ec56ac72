// File: internal/auth/flow.go
package auth

import (
	"context"

	"github.com/vuhp/go-helpdesk/internal/api"
	"github.com/vuhp/go-helpdesk/internal/domain"
	"github.com/vuhp/go-helpdesk/internal/logging"
)

// Authenticator is the slice of the API client the flows need.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*domain.TokenResponse, error)
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
}

// TokenStore persists the chat surface's credential and display name.
type TokenStore interface {
	Get() string
	Set(token string) error
	Clear() error
	SetDisplayName(name string) error
	DisplayName() string
}

// ListSyncer refreshes the conversation list after auth state changes.
type ListSyncer interface {
	Load(ctx context.Context, search string)
}

// SessionState is the part of the chat session auth needs to reset.
type SessionState interface {
	Reset()
}

// View surfaces auth outcomes to the user.
type View interface {
	Notice(text string)
	// Welcome greets a freshly signed-in user.
	Welcome(username string)
	// ShowLoggedOut resets the surface to the signed-out state.
	ShowLoggedOut()
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Flow handles login, registration and logout for the chat surface.
type Flow struct {
	api     Authenticator
	tokens  TokenStore
	list    ListSyncer
	session SessionState
	view    View
	confirm Confirmer
	logger  logging.Logger
}

// NewFlow wires an auth flow for the chat surface.
func NewFlow(apiClient Authenticator, tokens TokenStore, list ListSyncer, session SessionState, view View, confirm Confirmer, logger logging.Logger) *Flow {
	return &Flow{
		api:     apiClient,
		tokens:  tokens,
		list:    list,
		session: session,
		view:    view,
		confirm: confirm,
		logger:  logger,
	}
}

// Login exchanges credentials for a token and persists it together with the
// display name.
func (f *Flow) Login(ctx context.Context, username, password string) {
	if username == "" || password == "" {
		f.view.Notice("Vui lòng nhập đủ thông tin")
		return
	}

	token, err := f.api.Login(ctx, username, password)
	if err != nil {
		f.view.Notice(loginFailureMessage(err))
		return
	}

	if err := f.tokens.Set(token.AccessToken); err != nil {
		f.logger.Error("failed to persist token", "error", err)
		f.view.Notice("Không thể lưu phiên đăng nhập")
		return
	}
	if err := f.tokens.SetDisplayName(username); err != nil {
		f.logger.Warn("failed to persist display name", "error", err)
	}

	f.list.Load(ctx, "")
	f.view.Welcome(username)
}

// Register creates an account and prompts the user to sign in with it.
func (f *Flow) Register(ctx context.Context, username, email, password string) {
	if username == "" || password == "" || email == "" {
		f.view.Notice("Vui lòng nhập đủ thông tin")
		return
	}

	if _, err := f.api.Register(ctx, username, email, password); err != nil {
		f.view.Notice(loginFailureMessage(err))
		return
	}

	f.view.Notice("🎉 Đăng ký thành công! Hãy đăng nhập")
}

// Logout clears the session after an interactive confirmation.
func (f *Flow) Logout(ctx context.Context) {
	if !f.confirm.Confirm("Bạn muốn đăng xuất?") {
		return
	}

	if err := f.tokens.Clear(); err != nil {
		f.logger.Warn("failed to clear credential", "error", err)
	}
	f.session.Reset()
	f.view.ShowLoggedOut()
	f.list.Load(ctx, "")
}

func loginFailureMessage(err error) string {
	if api.IsNetwork(err) {
		return "Không thể kết nối server"
	}
	if detail := api.DetailOf(err); detail != "" {
		return detail
	}
	return "Đăng nhập thất bại"
}
