// File: internal/domain/knowledge.go
package domain

// KnowledgeEntry is one article of the admin knowledge base.
type KnowledgeEntry struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Keywords string `json:"keywords,omitempty"`
}
