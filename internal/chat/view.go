// File: internal/chat/view.go
package chat

// TranscriptView renders the conversation transcript. The terminal client
// prints; tests record.
type TranscriptView interface {
	AppendUser(text string)
	AppendBot(text string)
	ShowTyping()
	HideTyping()
	// ShowGreeting resets the transcript surface to the welcome message.
	ShowGreeting()
	// ShowEmptyConversation replaces the transcript when a loaded
	// conversation has no messages.
	ShowEmptyConversation()
	// ShowSignInHint nudges a guest to sign in so history is kept.
	ShowSignInHint()
	// Notice surfaces an out-of-band message (the browser used alert).
	Notice(text string)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}
