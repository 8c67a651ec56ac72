// File: internal/admin/knowledge_test.go
package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuhp/go-helpdesk/internal/api"
	"github.com/vuhp/go-helpdesk/internal/domain"
	"github.com/vuhp/go-helpdesk/internal/logging"
)

type fakeKnowledgeAPI struct {
	entries []domain.KnowledgeEntry
	listErr error

	created []domain.KnowledgeEntry
	updated map[int64]domain.KnowledgeEntry
	saveErr error
}

func (f *fakeKnowledgeAPI) ListKnowledge(ctx context.Context) ([]domain.KnowledgeEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

func (f *fakeKnowledgeAPI) CreateKnowledge(ctx context.Context, title, content string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.created = append(f.created, domain.KnowledgeEntry{Title: title, Content: content})
	return nil
}

func (f *fakeKnowledgeAPI) UpdateKnowledge(ctx context.Context, id int64, title, content string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.updated == nil {
		f.updated = map[int64]domain.KnowledgeEntry{}
	}
	f.updated[id] = domain.KnowledgeEntry{ID: id, Title: title, Content: content}
	return nil
}

type knowledgeViewRecorder struct {
	rendered [][]domain.KnowledgeEntry
	empty    int
	forms    []domain.KnowledgeEntry
	notices  []string
}

func (r *knowledgeViewRecorder) RenderList(entries []domain.KnowledgeEntry) {
	r.rendered = append(r.rendered, entries)
}
func (r *knowledgeViewRecorder) ShowEmpty() { r.empty++ }

func (r *knowledgeViewRecorder) ShowForm(entry domain.KnowledgeEntry) {
	r.forms = append(r.forms, entry)
}

func (r *knowledgeViewRecorder) Notice(text string) { r.notices = append(r.notices, text) }

type fakeSessionEnder struct {
	forced int
}

func (f *fakeSessionEnder) ForceLogout() { f.forced++ }

type knowledgeFixture struct {
	editor  *KnowledgeEditor
	api     *fakeKnowledgeAPI
	view    *knowledgeViewRecorder
	session *fakeSessionEnder
}

func newKnowledgeFixture() *knowledgeFixture {
	apiClient := &fakeKnowledgeAPI{}
	view := &knowledgeViewRecorder{}
	session := &fakeSessionEnder{}
	editor := NewKnowledgeEditor(apiClient, view, session, &logging.NoOpLogger{})
	return &knowledgeFixture{editor: editor, api: apiClient, view: view, session: session}
}

func TestKnowledgeEditor_LoadList(t *testing.T) {
	fx := newKnowledgeFixture()
	fx.api.entries = []domain.KnowledgeEntry{{ID: 1, Title: "Reset mật khẩu"}}

	fx.editor.LoadList(context.Background())

	require.Len(t, fx.view.rendered, 1)
	assert.Equal(t, "Reset mật khẩu", fx.view.rendered[0][0].Title)
}

func TestKnowledgeEditor_LoadList_Empty(t *testing.T) {
	fx := newKnowledgeFixture()

	fx.editor.LoadList(context.Background())

	assert.Equal(t, 1, fx.view.empty)
	assert.Empty(t, fx.view.rendered)
}

func TestKnowledgeEditor_LoadList_UnauthorizedEndsSession(t *testing.T) {
	fx := newKnowledgeFixture()
	fx.api.listErr = &api.Error{Type: api.ErrTypeAuth, Status: 401}

	fx.editor.LoadList(context.Background())

	assert.Equal(t, 1, fx.session.forced)
	assert.Empty(t, fx.view.notices)
}

func TestKnowledgeEditor_Save_ValidationRejectsBlankFields(t *testing.T) {
	fx := newKnowledgeFixture()

	fx.editor.Save(context.Background(), "  ", "nội dung")
	fx.editor.Save(context.Background(), "tiêu đề", "  ")

	assert.Empty(t, fx.api.created)
	assert.Equal(t, []string{"Nhập đầy đủ nội dung", "Nhập đầy đủ nội dung"}, fx.view.notices)
}

func TestKnowledgeEditor_Save_NoSelectionCreates(t *testing.T) {
	fx := newKnowledgeFixture()

	fx.editor.Save(context.Background(), " Lỗi VPN ", " Cài lại client VPN ")

	require.Len(t, fx.api.created, 1)
	assert.Equal(t, "Lỗi VPN", fx.api.created[0].Title)
	assert.Equal(t, "Cài lại client VPN", fx.api.created[0].Content)
	assert.Empty(t, fx.api.updated)
}

func TestKnowledgeEditor_Save_SelectionUpdates(t *testing.T) {
	fx := newKnowledgeFixture()
	fx.editor.Select(domain.KnowledgeEntry{ID: 7, Title: "cũ", Content: "cũ"})

	fx.editor.Save(context.Background(), "mới", "nội dung mới")

	require.Contains(t, fx.api.updated, int64(7))
	assert.Equal(t, "mới", fx.api.updated[7].Title)
	assert.Empty(t, fx.api.created)
}

func TestKnowledgeEditor_Save_ResetsFormAndReloads(t *testing.T) {
	fx := newKnowledgeFixture()
	fx.editor.Select(domain.KnowledgeEntry{ID: 7})
	fx.api.entries = []domain.KnowledgeEntry{{ID: 7, Title: "mới"}}

	fx.editor.Save(context.Background(), "mới", "nội dung")

	assert.Nil(t, fx.editor.Selected())
	// Select + the post-save reset both push a form.
	require.Len(t, fx.view.forms, 2)
	assert.Equal(t, domain.KnowledgeEntry{}, fx.view.forms[1])
	require.Len(t, fx.view.rendered, 1)
}

func TestKnowledgeEditor_Save_FailureKeepsSelection(t *testing.T) {
	fx := newKnowledgeFixture()
	fx.editor.Select(domain.KnowledgeEntry{ID: 7})
	fx.api.saveErr = errors.New("boom")

	fx.editor.Save(context.Background(), "mới", "nội dung")

	require.NotNil(t, fx.editor.Selected())
	assert.Equal(t, int64(7), *fx.editor.Selected())
	assert.Equal(t, []string{"Lỗi khi lưu"}, fx.view.notices)
}

func TestKnowledgeEditor_NewItemClearsSelection(t *testing.T) {
	fx := newKnowledgeFixture()
	fx.editor.Select(domain.KnowledgeEntry{ID: 3})

	fx.editor.NewItem()

	assert.Nil(t, fx.editor.Selected())
}
