// File: internal/domain/conversation.go
package domain

// DefaultConversationTitle labels conversations whose first question was empty.
const DefaultConversationTitle = "Cuộc hội thoại"

// Conversation is one entry of the sidebar list. The backend owns it; the
// client rebuilds its cached list on every successful sync.
type Conversation struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	LastMessageAt string `json:"last_message_at"`
	MessageCount  int    `json:"message_count"`
	IsPinned      bool   `json:"is_pinned"`
}

// DisplayTitle falls back to the default label for untitled conversations.
func (c Conversation) DisplayTitle() string {
	if c.Title == "" {
		return DefaultConversationTitle
	}
	return c.Title
}
