// File: internal/api/admin.go
package api

import (
	"context"
	"fmt"

	"github.com/vuhp/go-helpdesk/internal/domain"
)

// ListUsers fetches all accounts. This endpoint doubles as the admin
// privilege check: a non-admin token gets a 401/403 back.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.doJSON(ctx, "GET", "/admin/users", nil, true, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser applies the non-nil fields of update to an account.
func (c *Client) UpdateUser(ctx context.Context, id int64, update domain.UserUpdate) error {
	return c.doJSON(ctx, "PUT", fmt.Sprintf("/admin/users/%d", id), update, true, nil)
}

type passwordChangeRequest struct {
	NewPassword string `json:"new_password"`
}

// ChangeUserPassword sets a new password on an account.
func (c *Client) ChangeUserPassword(ctx context.Context, id int64, newPassword string) error {
	payload := passwordChangeRequest{NewPassword: newPassword}
	return c.doJSON(ctx, "POST", fmt.Sprintf("/admin/users/%d/password", id), payload, true, nil)
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/admin/users/%d", id), nil, true, nil)
}

// ListKnowledge fetches every knowledge base entry.
func (c *Client) ListKnowledge(ctx context.Context) ([]domain.KnowledgeEntry, error) {
	var entries []domain.KnowledgeEntry
	if err := c.doJSON(ctx, "GET", "/admin/knowledge", nil, true, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

type knowledgePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateKnowledge adds a new knowledge base entry.
func (c *Client) CreateKnowledge(ctx context.Context, title, content string) error {
	return c.doJSON(ctx, "POST", "/admin/knowledge", knowledgePayload{Title: title, Content: content}, true, nil)
}

// UpdateKnowledge replaces the title and content of an existing entry.
func (c *Client) UpdateKnowledge(ctx context.Context, id int64, title, content string) error {
	payload := knowledgePayload{Title: title, Content: content}
	return c.doJSON(ctx, "PUT", fmt.Sprintf("/admin/knowledge/%d", id), payload, true, nil)
}
