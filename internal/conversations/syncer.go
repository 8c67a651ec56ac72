// File: internal/conversations/syncer.go
package conversations

import (
	"context"
	"sync"
	"time"

	"github.com/vuhp/go-helpdesk/internal/api"
	"github.com/vuhp/go-helpdesk/internal/domain"
	"github.com/vuhp/go-helpdesk/internal/logging"
)

// Lister is the slice of the API client the syncer needs.
type Lister interface {
	ListConversations(ctx context.Context, search string) ([]domain.Conversation, error)
}

// CredentialStore is the slice of the token store the syncer needs.
type CredentialStore interface {
	Get() string
	Clear() error
}

// Pointer exposes the chat session's current conversation id. The syncer
// reads it to mark the active row and resets it when the session expires.
type Pointer interface {
	Current() *int64
	Reset()
}

// Syncer keeps the conversation list in step with the backend. A single
// in-flight gate drops duplicate top-level fetches; retries re-enter past the
// gate so a backoff chain always runs to completion.
type Syncer struct {
	lister  Lister
	tokens  CredentialStore
	pointer Pointer
	view    ListView
	logger  logging.Logger

	// Timeout bounds each fetch attempt.
	Timeout time.Duration
	// ServerPolicy retries 500/503 responses; NetworkPolicy retries
	// connection failures and timeouts.
	ServerPolicy  RetryPolicy
	NetworkPolicy RetryPolicy

	// wait is swappable so tests do not sleep.
	wait func(ctx context.Context, d time.Duration) error
	now  func() time.Time

	mu       sync.Mutex
	inFlight bool
}

// NewSyncer wires a Syncer with the default timeout and retry policies.
func NewSyncer(lister Lister, tokens CredentialStore, pointer Pointer, view ListView, logger logging.Logger) *Syncer {
	return &Syncer{
		lister:        lister,
		tokens:        tokens,
		pointer:       pointer,
		view:          view,
		logger:        logger,
		Timeout:       10 * time.Second,
		ServerPolicy:  ServerRetryPolicy(),
		NetworkPolicy: NetworkRetryPolicy(),
		wait:          sleep,
		now:           time.Now,
	}
}

// InFlight reports whether a fetch (including its backoff chain) is running.
func (s *Syncer) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// begin claims the in-flight gate. A fresh top-level call is dropped when the
// gate is already held; a retry claims it unconditionally.
func (s *Syncer) begin(retry bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight && !retry {
		return false
	}
	s.inFlight = true
	return true
}

func (s *Syncer) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

// Load fetches the conversation list and pushes the outcome to the view.
// Calling it again while a fetch is still pending is a deliberate no-op,
// so rapid UI triggers cost one request.
func (s *Syncer) Load(ctx context.Context, search string) {
	if !s.begin(false) {
		s.logger.Debug("conversation fetch already in flight, dropping duplicate")
		return
	}
	s.load(ctx, search, 0)
}

func (s *Syncer) load(ctx context.Context, search string, attempt int) {
	if attempt > 0 {
		s.begin(true)
	}

	if s.tokens.Get() == "" {
		s.view.ShowSignInPrompt()
		s.end()
		return
	}

	attemptCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	items, err := s.lister.ListConversations(attemptCtx, search)
	cancel()

	switch {
	case err == nil:
		s.render(items)
		s.end()

	case api.IsUnauthorized(err):
		// Terminal: the credential is stale. Never retried.
		if clearErr := s.tokens.Clear(); clearErr != nil {
			s.logger.Warn("failed to clear stale credential", "error", clearErr)
		}
		s.pointer.Reset()
		s.view.ShowSessionExpired()
		s.end()

	case api.IsRetryableStatus(err):
		status := api.StatusOf(err)
		if attempt < s.ServerPolicy.MaxRetries {
			s.logger.Warn("conversation fetch failed, retrying", "status", status, "attempt", attempt+1)
			if s.wait(ctx, s.ServerPolicy.Delay(attempt)) != nil {
				s.end()
				return
			}
			s.end()
			s.load(ctx, search, attempt+1)
			return
		}
		s.view.ShowError(status)
		s.end()

	case api.IsNetwork(err):
		if attempt < s.NetworkPolicy.MaxRetries {
			s.view.ShowConnecting(attempt + 1)
			if s.wait(ctx, s.NetworkPolicy.Delay(attempt)) != nil {
				s.end()
				return
			}
			s.end()
			s.load(ctx, search, attempt+1)
			return
		}
		s.logger.Error("backend unreachable after retries", "error", err)
		s.view.ShowConnectionLost()
		s.end()

	case api.IsInvalidData(err):
		s.view.ShowInvalidData()
		s.end()

	default:
		s.view.ShowError(api.StatusOf(err))
		s.end()
	}
}

func (s *Syncer) render(conversations []domain.Conversation) {
	if len(conversations) == 0 {
		s.view.ShowEmpty()
		return
	}

	current := s.pointer.Current()
	now := s.now()
	items := make([]Item, len(conversations))
	for i, convo := range conversations {
		items[i] = Item{
			Conversation: convo,
			LastActivity: TimeAgo(convo.LastMessageAt, now),
			Active:       current != nil && *current == convo.ID,
		}
	}
	s.view.Render(items)
}
