// File: internal/auth/admin.go
package auth

import (
	"context"

	"github.com/vuhp/go-helpdesk/internal/domain"
	"github.com/vuhp/go-helpdesk/internal/logging"
)

// AdminChecker proves admin privilege. Listing users is the check the
// backend exposes: non-admin tokens are rejected.
type AdminChecker interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// AdminTokenStore persists the admin console's credential. The admin surface
// never shares a session with the chat surface.
type AdminTokenStore interface {
	Get() string
	Set(token string) error
	Clear() error
}

// AdminView is the admin console's login/console switcher.
type AdminView interface {
	ShowLogin()
	ShowConsole()
	Notice(text string)
}

// AdminFlow handles the admin console's sign-in lifecycle, including the
// privilege re-validation that follows a successful login.
type AdminFlow struct {
	api interface {
		Authenticator
		AdminChecker
	}
	tokens  AdminTokenStore
	view    AdminView
	confirm Confirmer
	logger  logging.Logger
}

// NewAdminFlow wires the admin console auth flow.
func NewAdminFlow(apiClient interface {
	Authenticator
	AdminChecker
}, tokens AdminTokenStore, view AdminView, confirm Confirmer, logger logging.Logger) *AdminFlow {
	return &AdminFlow{
		api:     apiClient,
		tokens:  tokens,
		view:    view,
		confirm: confirm,
		logger:  logger,
	}
}

// EnsureSession validates any stored admin token at startup. An invalid or
// missing token lands on the login screen.
func (f *AdminFlow) EnsureSession(ctx context.Context) bool {
	if f.tokens.Get() == "" {
		f.view.ShowLogin()
		return false
	}

	if _, err := f.api.ListUsers(ctx); err != nil {
		f.logger.Info("stored admin token rejected", "error", err)
		if clearErr := f.tokens.Clear(); clearErr != nil {
			f.logger.Warn("failed to clear credential", "error", clearErr)
		}
		f.view.ShowLogin()
		return false
	}

	f.view.ShowConsole()
	return true
}

// Login signs in and immediately re-validates admin privilege. A token that
// authenticates but lacks privilege is cleared again; the console is never
// shown for it.
func (f *AdminFlow) Login(ctx context.Context, username, password string) bool {
	if username == "" || password == "" {
		f.view.Notice("Vui lòng nhập đầy đủ thông tin")
		return false
	}

	token, err := f.api.Login(ctx, username, password)
	if err != nil {
		f.view.Notice(loginFailureMessage(err))
		return false
	}

	if err := f.tokens.Set(token.AccessToken); err != nil {
		f.logger.Error("failed to persist admin token", "error", err)
		f.view.Notice("Không thể lưu phiên đăng nhập")
		return false
	}

	if _, err := f.api.ListUsers(ctx); err != nil {
		if clearErr := f.tokens.Clear(); clearErr != nil {
			f.logger.Warn("failed to clear credential", "error", clearErr)
		}
		f.view.Notice("Tài khoản không có quyền admin")
		f.view.ShowLogin()
		return false
	}

	f.view.ShowConsole()
	return true
}

// Logout clears the admin session after confirmation.
func (f *AdminFlow) Logout(_ context.Context) {
	if !f.confirm.Confirm("Bạn muốn đăng xuất admin?") {
		return
	}
	if err := f.tokens.Clear(); err != nil {
		f.logger.Warn("failed to clear credential", "error", err)
	}
	f.view.ShowLogin()
}

// ForceLogout drops the admin session without confirmation. The resource
// editors call it when a list endpoint answers 401.
func (f *AdminFlow) ForceLogout() {
	if err := f.tokens.Clear(); err != nil {
		f.logger.Warn("failed to clear credential", "error", err)
	}
	f.view.ShowLogin()
}
