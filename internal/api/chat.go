// File: internal/api/chat.go
package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/vuhp/go-helpdesk/internal/domain"
)

type chatRequest struct {
	Message        string `json:"message"`
	ConversationID *int64 `json:"conversation_id"`
}

// SendMessage posts one chat turn. conversationID is nil for a new or guest
// conversation; the server assigns an id on the first authenticated turn.
func (c *Client) SendMessage(ctx context.Context, message string, conversationID *int64) (*domain.ChatResponse, error) {
	var resp domain.ChatResponse
	err := c.doJSON(ctx, "POST", "/chat", chatRequest{
		Message:        message,
		ConversationID: conversationID,
	}, true, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListConversations fetches the caller's conversation list, optionally
// filtered by a search term.
func (c *Client) ListConversations(ctx context.Context, search string) ([]domain.Conversation, error) {
	path := "/chat/conversations"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}

	// Decoding into a slice enforces the "body must be an array" contract;
	// anything else surfaces as a DATA error.
	var conversations []domain.Conversation
	if err := c.doJSON(ctx, "GET", path, nil, true, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// ConversationMessages fetches the full transcript of one conversation.
func (c *Client) ConversationMessages(ctx context.Context, id int64) ([]domain.Message, error) {
	var messages []domain.Message
	path := fmt.Sprintf("/chat/conversations/%d/messages", id)
	if err := c.doJSON(ctx, "GET", path, nil, true, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// DeleteConversation removes a conversation and its messages.
func (c *Client) DeleteConversation(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/chat/conversations/%d", id), nil, true, nil)
}

// PinConversation flags a conversation for priority display.
func (c *Client) PinConversation(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "POST", fmt.Sprintf("/chat/conversations/%d/pin", id), nil, true, nil)
}

// UnpinConversation clears the pin flag.
func (c *Client) UnpinConversation(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "POST", fmt.Sprintf("/chat/conversations/%d/unpin", id), nil, true, nil)
}
