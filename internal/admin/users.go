// File: internal/admin/users.go
package admin

import (
	"context"

	"github.com/vuhp/go-helpdesk/internal/api"
	"github.com/vuhp/go-helpdesk/internal/domain"
	"github.com/vuhp/go-helpdesk/internal/logging"
)

// minPasswordLength is validated client-side before any request goes out.
const minPasswordLength = 6

// UserAPI is the slice of the API client the user editor needs.
type UserAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id int64, update domain.UserUpdate) error
	ChangeUserPassword(ctx context.Context, id int64, newPassword string) error
	DeleteUser(ctx context.Context, id int64) error
}

// UserView renders the accounts tab.
type UserView interface {
	RenderList(users []domain.User)
	Notice(text string)
}

// Prompter collects the sequential inputs of the edit dialogs.
type Prompter interface {
	// Prompt asks for a line of input; ok is false when the user cancels.
	Prompt(label, initial string) (value string, ok bool)
	Confirm(prompt string) bool
}

// UserEditor is the account administration controller.
type UserEditor struct {
	api     UserAPI
	view    UserView
	prompt  Prompter
	session SessionEnder
	logger  logging.Logger
}

// NewUserEditor wires the accounts tab controller.
func NewUserEditor(apiClient UserAPI, view UserView, prompt Prompter, session SessionEnder, logger logging.Logger) *UserEditor {
	return &UserEditor{api: apiClient, view: view, prompt: prompt, session: session, logger: logger}
}

// LoadList refreshes the account list. An unauthorized response ends the
// admin session.
func (e *UserEditor) LoadList(ctx context.Context) {
	users, err := e.api.ListUsers(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			e.session.ForceLogout()
			return
		}
		e.logger.Warn("failed to load user list", "error", err)
		e.view.Notice("Lỗi khi tải dữ liệu")
		return
	}
	e.view.RenderList(users)
}

// Edit walks the sequential prompts (email, active flag, admin flag) and
// applies the result. System admin accounts are not editable.
func (e *UserEditor) Edit(ctx context.Context, user domain.User) {
	if user.IsAdmin {
		e.view.Notice("Không thể sửa tài khoản admin hệ thống")
		return
	}

	email, ok := e.prompt.Prompt("Email mới:", user.Email)
	if !ok || email == "" {
		return
	}
	isActive := e.prompt.Confirm("Tài khoản hoạt động?")
	isAdmin := e.prompt.Confirm("Cấp quyền admin?")

	update := domain.UserUpdate{Email: &email, IsActive: &isActive, IsAdmin: &isAdmin}
	if err := e.api.UpdateUser(ctx, user.ID, update); err != nil {
		e.logger.Warn("failed to update user", "id", user.ID, "error", err)
		e.view.Notice("Cập nhật thất bại")
		return
	}
	e.LoadList(ctx)
}

// ChangePassword prompts for and applies a new password.
func (e *UserEditor) ChangePassword(ctx context.Context, id int64) {
	password, ok := e.prompt.Prompt("Nhập mật khẩu mới (>=6 ký tự)", "")
	if !ok {
		return
	}
	if len(password) < minPasswordLength {
		e.view.Notice("Mật khẩu không hợp lệ")
		return
	}

	if err := e.api.ChangeUserPassword(ctx, id, password); err != nil {
		e.logger.Warn("failed to change password", "id", id, "error", err)
		e.view.Notice("Đổi mật khẩu thất bại")
		return
	}
	e.view.Notice("Đã đổi mật khẩu")
}

// Remove deletes an account after confirmation.
func (e *UserEditor) Remove(ctx context.Context, id int64) {
	if !e.prompt.Confirm("Xóa tài khoản này?") {
		return
	}

	if err := e.api.DeleteUser(ctx, id); err != nil {
		e.logger.Warn("failed to delete user", "id", id, "error", err)
		e.view.Notice("Xóa thất bại")
		return
	}
	e.LoadList(ctx)
}
