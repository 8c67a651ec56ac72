// File: internal/conversations/syncer_test.go
package conversations

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuhp/go-helpdesk/internal/api"
	"github.com/vuhp/go-helpdesk/internal/domain"
	"github.com/vuhp/go-helpdesk/internal/logging"
)

type fakeLister struct {
	mu    sync.Mutex
	calls []string
	fn    func(attempt int) ([]domain.Conversation, error)
}

func (f *fakeLister) ListConversations(ctx context.Context, search string) ([]domain.Conversation, error) {
	f.mu.Lock()
	f.calls = append(f.calls, search)
	attempt := len(f.calls) - 1
	f.mu.Unlock()
	return f.fn(attempt)
}

func (f *fakeLister) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeTokens struct {
	mu      sync.Mutex
	token   string
	cleared bool
}

func (f *fakeTokens) Get() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeTokens) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	f.cleared = true
	return nil
}

type fakePointer struct {
	mu      sync.Mutex
	current *int64
	reset   bool
}

func (f *fakePointer) Current() *int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *fakePointer) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = nil
	f.reset = true
}

// recordingView records every outcome pushed by the syncer.
type recordingView struct {
	mu             sync.Mutex
	signInPrompts  int
	sessionExpired int
	empty          int
	invalidData    int
	errors         []int
	connecting     []int
	connectionLost int
	rendered       [][]Item
}

func (v *recordingView) ShowSignInPrompt()   { v.mu.Lock(); v.signInPrompts++; v.mu.Unlock() }
func (v *recordingView) ShowSessionExpired() { v.mu.Lock(); v.sessionExpired++; v.mu.Unlock() }
func (v *recordingView) ShowEmpty()          { v.mu.Lock(); v.empty++; v.mu.Unlock() }
func (v *recordingView) ShowInvalidData()    { v.mu.Lock(); v.invalidData++; v.mu.Unlock() }
func (v *recordingView) ShowError(status int) {
	v.mu.Lock()
	v.errors = append(v.errors, status)
	v.mu.Unlock()
}
func (v *recordingView) ShowConnecting(attempt int) {
	v.mu.Lock()
	v.connecting = append(v.connecting, attempt)
	v.mu.Unlock()
}
func (v *recordingView) ShowConnectionLost() { v.mu.Lock(); v.connectionLost++; v.mu.Unlock() }
func (v *recordingView) Render(items []Item) {
	v.mu.Lock()
	v.rendered = append(v.rendered, items)
	v.mu.Unlock()
}

type syncFixture struct {
	syncer  *Syncer
	lister  *fakeLister
	tokens  *fakeTokens
	pointer *fakePointer
	view    *recordingView
	waits   *[]time.Duration
}

func newSyncFixture(fn func(attempt int) ([]domain.Conversation, error)) *syncFixture {
	lister := &fakeLister{fn: fn}
	tokens := &fakeTokens{token: "valid-token"}
	pointer := &fakePointer{}
	view := &recordingView{}

	syncer := NewSyncer(lister, tokens, pointer, view, &logging.NoOpLogger{})
	waits := &[]time.Duration{}
	syncer.wait = func(ctx context.Context, d time.Duration) error {
		*waits = append(*waits, d)
		return nil
	}
	syncer.now = func() time.Time { return time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC) }

	return &syncFixture{syncer: syncer, lister: lister, tokens: tokens, pointer: pointer, view: view, waits: waits}
}

func TestSyncer_Load_NoCredential(t *testing.T) {
	fx := newSyncFixture(func(int) ([]domain.Conversation, error) { return nil, nil })
	fx.tokens.token = ""

	fx.syncer.Load(context.Background(), "")

	assert.Equal(t, 1, fx.view.signInPrompts)
	assert.Equal(t, 0, fx.lister.callCount())
	assert.False(t, fx.syncer.InFlight())
}

func TestSyncer_Load_RendersList(t *testing.T) {
	convos := []domain.Conversation{
		{ID: 7, Title: "Lỗi máy in", MessageCount: 4, LastMessageAt: "2024-05-20T11:59:40", IsPinned: true},
		{ID: 9, Title: "", MessageCount: 1, LastMessageAt: "2024-05-18T12:00:00"},
	}
	fx := newSyncFixture(func(int) ([]domain.Conversation, error) { return convos, nil })
	current := int64(9)
	fx.pointer.current = &current

	fx.syncer.Load(context.Background(), "")

	require.Len(t, fx.view.rendered, 1)
	items := fx.view.rendered[0]
	require.Len(t, items, 2)

	assert.True(t, items[0].Conversation.IsPinned)
	assert.Equal(t, "vừa xong", items[0].LastActivity)
	assert.False(t, items[0].Active)

	assert.Equal(t, "Cuộc hội thoại", items[1].Conversation.DisplayTitle())
	assert.Equal(t, "2 ngày trước", items[1].LastActivity)
	assert.True(t, items[1].Active)
}

func TestSyncer_Load_EmptyList(t *testing.T) {
	fx := newSyncFixture(func(int) ([]domain.Conversation, error) { return []domain.Conversation{}, nil })

	fx.syncer.Load(context.Background(), "")

	assert.Equal(t, 1, fx.view.empty)
	assert.Empty(t, fx.view.rendered)
}

func TestSyncer_Load_SearchTermForwarded(t *testing.T) {
	fx := newSyncFixture(func(int) ([]domain.Conversation, error) { return nil, nil })

	fx.syncer.Load(context.Background(), "máy in")

	require.Equal(t, 1, fx.lister.callCount())
	assert.Equal(t, "máy in", fx.lister.calls[0])
}

func TestSyncer_Load_UnauthorizedClearsSessionAndNeverRetries(t *testing.T) {
	fx := newSyncFixture(func(int) ([]domain.Conversation, error) {
		return nil, &api.Error{Type: api.ErrTypeAuth, Status: 401}
	})
	current := int64(3)
	fx.pointer.current = &current

	fx.syncer.Load(context.Background(), "")

	assert.Equal(t, 1, fx.lister.callCount())
	assert.True(t, fx.tokens.cleared)
	assert.True(t, fx.pointer.reset)
	assert.Equal(t, 1, fx.view.sessionExpired)
	assert.Empty(t, *fx.waits)
}

func TestSyncer_Load_ServerErrorRetriesWithLinearBackoff(t *testing.T) {
	fx := newSyncFixture(func(int) ([]domain.Conversation, error) {
		return nil, &api.Error{Type: api.ErrTypeServer, Status: 500}
	})

	fx.syncer.Load(context.Background(), "")

	// One original attempt plus exactly three retries.
	assert.Equal(t, 4, fx.lister.callCount())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, *fx.waits)
	assert.Equal(t, []int{500}, fx.view.errors)
	assert.False(t, fx.syncer.InFlight())
}

func TestSyncer_Load_ServiceUnavailableRecoversMidChain(t *testing.T) {
	fx := newSyncFixture(func(attempt int) ([]domain.Conversation, error) {
		if attempt < 2 {
			return nil, &api.Error{Type: api.ErrTypeServer, Status: 503}
		}
		return []domain.Conversation{{ID: 1, Title: "ok", LastMessageAt: "2024-05-20T12:00:00"}}, nil
	})

	fx.syncer.Load(context.Background(), "")

	assert.Equal(t, 3, fx.lister.callCount())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *fx.waits)
	require.Len(t, fx.view.rendered, 1)
	assert.Empty(t, fx.view.errors)
}

func TestSyncer_Load_NonRetryableStatusIsTerminal(t *testing.T) {
	fx := newSyncFixture(func(int) ([]domain.Conversation, error) {
		return nil, &api.Error{Type: api.ErrTypeServer, Status: 502}
	})

	fx.syncer.Load(context.Background(), "")

	assert.Equal(t, 1, fx.lister.callCount())
	assert.Equal(t, []int{502}, fx.view.errors)
	assert.Empty(t, *fx.waits)
}

func TestSyncer_Load_NetworkFailureRetriesWithLongerBackoff(t *testing.T) {
	fx := newSyncFixture(func(int) ([]domain.Conversation, error) {
		return nil, &api.Error{Type: api.ErrTypeNetwork, Detail: "request failed"}
	})

	fx.syncer.Load(context.Background(), "")

	assert.Equal(t, 4, fx.lister.callCount())
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second, 6 * time.Second}, *fx.waits)
	assert.Equal(t, []int{1, 2, 3}, fx.view.connecting)
	assert.Equal(t, 1, fx.view.connectionLost)
}

func TestSyncer_Load_InvalidDataIsTerminal(t *testing.T) {
	fx := newSyncFixture(func(int) ([]domain.Conversation, error) {
		return nil, &api.Error{Type: api.ErrTypeData, Status: 200}
	})

	fx.syncer.Load(context.Background(), "")

	assert.Equal(t, 1, fx.lister.callCount())
	assert.Equal(t, 1, fx.view.invalidData)
	assert.Empty(t, *fx.waits)
}

func TestSyncer_Load_DuplicateWhileInFlightIsNoOp(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	fx := newSyncFixture(nil)
	fx.lister.fn = func(attempt int) ([]domain.Conversation, error) {
		if attempt == 0 {
			close(entered)
			<-release
		}
		return []domain.Conversation{}, nil
	}

	done := make(chan struct{})
	go func() {
		fx.syncer.Load(context.Background(), "")
		close(done)
	}()

	<-entered
	// Second top-level call while the first request is pending.
	fx.syncer.Load(context.Background(), "")
	assert.Equal(t, 1, fx.lister.callCount())

	close(release)
	<-done
	assert.Equal(t, 1, fx.lister.callCount())
	assert.False(t, fx.syncer.InFlight())
}

func TestSyncer_Load_RetryChainBypassesGate(t *testing.T) {
	// The retry chain must keep going even though the first attempt set the
	// in-flight gate; only fresh top-level calls are dropped.
	fx := newSyncFixture(func(attempt int) ([]domain.Conversation, error) {
		if attempt == 0 {
			return nil, &api.Error{Type: api.ErrTypeServer, Status: 500}
		}
		return []domain.Conversation{}, nil
	})

	fx.syncer.Load(context.Background(), "")

	assert.Equal(t, 2, fx.lister.callCount())
	assert.Equal(t, 1, fx.view.empty)
}

func TestSyncer_Load_CancelledContextStopsBackoff(t *testing.T) {
	fx := newSyncFixture(func(int) ([]domain.Conversation, error) {
		return nil, &api.Error{Type: api.ErrTypeServer, Status: 500}
	})
	fx.syncer.wait = func(ctx context.Context, d time.Duration) error {
		return context.Canceled
	}

	fx.syncer.Load(context.Background(), "")

	assert.Equal(t, 1, fx.lister.callCount())
	assert.False(t, fx.syncer.InFlight())
}
