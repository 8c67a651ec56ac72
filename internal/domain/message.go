// File: internal/domain/message.go
package domain

// Message is a single question/answer exchange within a conversation.
// The client renders it as two transcript entries.
type Message struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	CreatedAt string `json:"created_at"`
}
