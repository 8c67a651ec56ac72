// File: internal/chat/session.go
package chat

import (
	"context"
	"strings"
	"sync"

	"github.com/vuhp/go-helpdesk/internal/api"
	"github.com/vuhp/go-helpdesk/internal/domain"
	"github.com/vuhp/go-helpdesk/internal/logging"
)

// Messenger is the slice of the API client the session needs.
type Messenger interface {
	SendMessage(ctx context.Context, message string, conversationID *int64) (*domain.ChatResponse, error)
	ConversationMessages(ctx context.Context, id int64) ([]domain.Message, error)
	DeleteConversation(ctx context.Context, id int64) error
	PinConversation(ctx context.Context, id int64) error
	UnpinConversation(ctx context.Context, id int64) error
}

// CredentialStore is the slice of the token store the session needs.
type CredentialStore interface {
	Get() string
	Clear() error
}

// ListSyncer refreshes the sidebar after operations that change it.
type ListSyncer interface {
	Load(ctx context.Context, search string)
	InFlight() bool
}

// EntryRole distinguishes the two transcript sides.
type EntryRole string

const (
	RoleUser EntryRole = "user"
	RoleBot  EntryRole = "bot"
)

// Entry is one rendered transcript line.
type Entry struct {
	Role EntryRole
	Text string
}

// Session drives the active conversation: the current conversation pointer,
// sending turns, loading history, deletion and pinning. All state that was
// ambient in the browser client lives here so independent sessions can
// coexist.
type Session struct {
	api     Messenger
	tokens  CredentialStore
	view    TranscriptView
	list    ListSyncer
	confirm Confirmer
	logger  logging.Logger

	mu                sync.Mutex
	currentID         *int64
	skipDeleteConfirm bool
	transcript        []Entry
}

// NewSession creates a session with no active conversation.
func NewSession(apiClient Messenger, tokens CredentialStore, view TranscriptView, list ListSyncer, confirm Confirmer, logger logging.Logger) *Session {
	return &Session{
		api:     apiClient,
		tokens:  tokens,
		view:    view,
		list:    list,
		confirm: confirm,
		logger:  logger,
	}
}

// Current returns the active conversation id, nil for a new/unsaved one.
func (s *Session) Current() *int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentID == nil {
		return nil
	}
	id := *s.currentID
	return &id
}

// Reset detaches the session from any conversation without touching the
// transcript. The syncer calls this when the backend expires the session.
func (s *Session) Reset() {
	s.mu.Lock()
	s.currentID = nil
	s.mu.Unlock()
}

// Transcript returns a copy of the current transcript entries.
func (s *Session) Transcript() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *Session) setCurrent(id int64) {
	s.mu.Lock()
	s.currentID = &id
	s.mu.Unlock()
}

func (s *Session) appendEntry(role EntryRole, text string) {
	s.mu.Lock()
	s.transcript = append(s.transcript, Entry{Role: role, Text: text})
	s.mu.Unlock()
	if role == RoleUser {
		s.view.AppendUser(text)
	} else {
		s.view.AppendBot(text)
	}
}

func (s *Session) clearTranscript() {
	s.mu.Lock()
	s.transcript = nil
	s.mu.Unlock()
}

// Send posts one chat turn. Empty or whitespace-only input is a no-op. The
// user's message is appended optimistically before the request goes out.
func (s *Session) Send(ctx context.Context, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}

	s.appendEntry(RoleUser, message)
	s.view.ShowTyping()

	resp, err := s.api.SendMessage(ctx, message, s.Current())
	s.view.HideTyping()

	if err != nil {
		if api.IsUnauthorized(err) {
			if clearErr := s.tokens.Clear(); clearErr != nil {
				s.logger.Warn("failed to clear stale credential", "error", clearErr)
			}
			s.Reset()
			s.list.Load(ctx, "")
			s.view.ShowSignInHint()
			s.view.Notice("Phiên đăng nhập đã hết hạn. Vui lòng đăng nhập lại.")
			return
		}
		if api.IsNetwork(err) {
			s.view.Notice("Lỗi kết nối đến server")
			return
		}
		if detail := api.DetailOf(err); detail != "" {
			s.view.Notice(detail)
			return
		}
		s.view.Notice("Lỗi khi gửi tin nhắn")
		return
	}

	s.appendEntry(RoleBot, resp.Answer)

	if resp.Guest {
		// Guest turns are not persisted; invite the user to sign in.
		s.view.ShowSignInHint()
		return
	}

	s.setCurrent(resp.ConversationID)
	s.list.Load(ctx, "")
}

// LoadConversation replaces the transcript with a stored conversation.
func (s *Session) LoadConversation(ctx context.Context, id int64) {
	if id <= 0 {
		return
	}

	messages, err := s.api.ConversationMessages(ctx, id)
	if err != nil {
		switch {
		case api.IsUnauthorized(err):
			s.view.Notice("Bạn cần đăng nhập để xem lịch sử chat")
		case api.IsNotFound(err):
			s.view.Notice("Không tìm thấy cuộc hội thoại này")
		case api.IsInvalidData(err):
			s.view.Notice("Dữ liệu không hợp lệ")
		default:
			s.view.Notice("Lỗi khi tải cuộc hội thoại")
		}
		return
	}

	s.setCurrent(id)
	s.clearTranscript()

	if len(messages) == 0 {
		s.view.ShowEmptyConversation()
	} else {
		for _, m := range messages {
			s.appendEntry(RoleUser, m.Question)
			s.appendEntry(RoleBot, m.Answer)
		}
	}

	// The sidebar only needs a refresh for the active-row marker; skip it
	// when a sync is already running.
	if !s.list.InFlight() {
		s.list.Load(ctx, "")
	}
}

// NewConversation detaches from the current conversation and resets the
// transcript to the greeting.
func (s *Session) NewConversation() {
	s.Reset()
	s.clearTranscript()
	s.view.ShowGreeting()
}

// DeleteConversation removes a conversation after confirmation. The first
// confirmation can be remembered for the rest of the session.
func (s *Session) DeleteConversation(ctx context.Context, id int64) {
	s.mu.Lock()
	skip := s.skipDeleteConfirm
	s.mu.Unlock()

	if !skip {
		if !s.confirm.Confirm("Bạn có chắc muốn xóa cuộc hội thoại này?") {
			return
		}
		if s.confirm.Confirm("Ghi nhớ lựa chọn và không hỏi lại trong phiên này?") {
			s.mu.Lock()
			s.skipDeleteConfirm = true
			s.mu.Unlock()
		}
	}

	if err := s.api.DeleteConversation(ctx, id); err != nil {
		switch {
		case api.IsUnauthorized(err):
			s.view.Notice("❌ Bạn cần đăng nhập để xóa cuộc hội thoại")
		case api.IsNotFound(err):
			s.view.Notice("❌ Không tìm thấy cuộc hội thoại này")
		case api.IsNetwork(err):
			s.view.Notice("❌ Lỗi kết nối đến server")
		default:
			s.view.Notice("❌ Xóa thất bại. Vui lòng thử lại.")
		}
		return
	}

	if current := s.Current(); current != nil && *current == id {
		s.NewConversation()
	}
	s.list.Load(ctx, "")
}

// TogglePin pins or unpins a conversation based on its current state.
func (s *Session) TogglePin(ctx context.Context, convo domain.Conversation) {
	if s.tokens.Get() == "" {
		s.view.Notice("Bạn cần đăng nhập")
		return
	}

	var err error
	if convo.IsPinned {
		err = s.api.UnpinConversation(ctx, convo.ID)
	} else {
		err = s.api.PinConversation(ctx, convo.ID)
	}
	if err != nil {
		if api.IsNetwork(err) {
			s.view.Notice("Lỗi kết nối đến server")
		} else {
			s.view.Notice("Lỗi khi ghim/bỏ ghim. Vui lòng thử lại.")
		}
		return
	}

	s.list.Load(ctx, "")
}
