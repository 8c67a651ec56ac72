// File: internal/conversations/view.go
package conversations

import "github.com/vuhp/go-helpdesk/internal/domain"

// Item is one rendered row of the conversation list.
type Item struct {
	Conversation domain.Conversation
	// LastActivity is the humanized age of the last message.
	LastActivity string
	// Active marks the currently open conversation.
	Active bool
}

// ListView receives every outcome of a sync. Implementations render a
// terminal sidebar; tests record the calls.
type ListView interface {
	// ShowSignInPrompt replaces the list with a "sign in to see history" hint.
	ShowSignInPrompt()
	// ShowSessionExpired replaces the list after the backend rejected the token.
	ShowSessionExpired()
	// ShowEmpty replaces the list when the account has no conversations yet.
	ShowEmpty()
	// ShowInvalidData replaces the list when the response was not a list.
	ShowInvalidData()
	// ShowError replaces the list with a numeric-status failure notice.
	ShowError(status int)
	// ShowConnecting announces a reconnect attempt (1-based).
	ShowConnecting(attempt int)
	// ShowConnectionLost replaces the list after reconnects are exhausted.
	ShowConnectionLost()
	// Render replaces the list with the fetched conversations.
	Render(items []Item)
}
