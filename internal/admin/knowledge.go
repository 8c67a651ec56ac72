// File: internal/admin/knowledge.go
package admin

import (
	"context"
	"strings"
	"sync"

	"github.com/vuhp/go-helpdesk/internal/api"
	"github.com/vuhp/go-helpdesk/internal/domain"
	"github.com/vuhp/go-helpdesk/internal/logging"
)

// KnowledgeAPI is the slice of the API client the knowledge editor needs.
type KnowledgeAPI interface {
	ListKnowledge(ctx context.Context) ([]domain.KnowledgeEntry, error)
	CreateKnowledge(ctx context.Context, title, content string) error
	UpdateKnowledge(ctx context.Context, id int64, title, content string) error
}

// KnowledgeView renders the knowledge tab.
type KnowledgeView interface {
	RenderList(entries []domain.KnowledgeEntry)
	ShowEmpty()
	// ShowForm fills the edit form; a zero entry clears it.
	ShowForm(entry domain.KnowledgeEntry)
	Notice(text string)
}

// SessionEnder drops the admin session when the backend rejects it.
type SessionEnder interface {
	ForceLogout()
}

// KnowledgeEditor is the knowledge base's list/create/update controller.
// Whether a save creates or updates follows from the selection held here.
type KnowledgeEditor struct {
	api     KnowledgeAPI
	view    KnowledgeView
	session SessionEnder
	logger  logging.Logger

	mu       sync.Mutex
	selected *int64
}

// NewKnowledgeEditor wires the knowledge tab controller.
func NewKnowledgeEditor(apiClient KnowledgeAPI, view KnowledgeView, session SessionEnder, logger logging.Logger) *KnowledgeEditor {
	return &KnowledgeEditor{api: apiClient, view: view, session: session, logger: logger}
}

// LoadList refreshes the entry list. An unauthorized response ends the admin
// session.
func (e *KnowledgeEditor) LoadList(ctx context.Context) {
	entries, err := e.api.ListKnowledge(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			e.session.ForceLogout()
			return
		}
		e.logger.Warn("failed to load knowledge list", "error", err)
		e.view.Notice("Lỗi khi tải dữ liệu")
		return
	}

	if len(entries) == 0 {
		e.view.ShowEmpty()
		return
	}
	e.view.RenderList(entries)
}

// Select loads an entry into the edit form.
func (e *KnowledgeEditor) Select(entry domain.KnowledgeEntry) {
	e.mu.Lock()
	id := entry.ID
	e.selected = &id
	e.mu.Unlock()
	e.view.ShowForm(entry)
}

// NewItem clears the form so the next save creates a fresh entry.
func (e *KnowledgeEditor) NewItem() {
	e.mu.Lock()
	e.selected = nil
	e.mu.Unlock()
	e.view.ShowForm(domain.KnowledgeEntry{})
}

// Selected returns the id the form is editing, nil when creating.
func (e *KnowledgeEditor) Selected() *int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.selected == nil {
		return nil
	}
	id := *e.selected
	return &id
}

// Save validates the form and creates or updates depending on the selection.
func (e *KnowledgeEditor) Save(ctx context.Context, title, content string) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		e.view.Notice("Nhập đầy đủ nội dung")
		return
	}

	var err error
	if selected := e.Selected(); selected != nil {
		err = e.api.UpdateKnowledge(ctx, *selected, title, content)
	} else {
		err = e.api.CreateKnowledge(ctx, title, content)
	}
	if err != nil {
		e.logger.Warn("failed to save knowledge entry", "error", err)
		e.view.Notice("Lỗi khi lưu")
		return
	}

	e.NewItem()
	e.LoadList(ctx)
}
