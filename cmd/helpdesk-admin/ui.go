// File: cmd/helpdesk-admin/ui.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/vuhp/go-helpdesk/internal/domain"
)

var (
	dimColor    = color.New(color.Faint)
	errColor    = color.New(color.FgRed)
	okColor     = color.New(color.FgGreen)
	headerColor = color.New(color.Bold, color.FgCyan)
	badgeAdmin  = color.New(color.FgYellow)
	badgeLocked = color.New(color.FgRed)
)

// adminUI implements the admin console's presenter and prompter interfaces
// on stdin/stdout.
type adminUI struct {
	reader *bufio.Reader

	mu          sync.Mutex
	loggedIn    bool
	lastEntries []domain.KnowledgeEntry
	lastUsers   []domain.User
	formEntry   domain.KnowledgeEntry
}

func newAdminUI() *adminUI {
	return &adminUI{reader: bufio.NewReader(os.Stdin)}
}

func (u *adminUI) ReadLine(prompt string) (string, bool) {
	fmt.Print(prompt)
	line, err := u.reader.ReadString('\n')
	if err != nil {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

/* ----- auth.AdminView / auth.Confirmer ----- */

func (u *adminUI) ShowLogin() {
	u.mu.Lock()
	u.loggedIn = false
	u.mu.Unlock()
	headerColor.Println("=== Đăng nhập quản trị ===")
}

func (u *adminUI) ShowConsole() {
	u.mu.Lock()
	u.loggedIn = true
	u.mu.Unlock()
	headerColor.Println("=== Bảng quản trị ===")
	fmt.Println("Gõ 'help' để xem lệnh.")
}

func (u *adminUI) LoggedIn() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.loggedIn
}

func (u *adminUI) Notice(text string) {
	fmt.Println(text)
}

func (u *adminUI) Confirm(prompt string) bool {
	answer, ok := u.ReadLine(prompt + " [y/N] ")
	if !ok {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

/* ----- admin.Prompter ----- */

func (u *adminUI) Prompt(label, initial string) (string, bool) {
	suffix := " "
	if initial != "" {
		suffix = fmt.Sprintf(" [%s] ", initial)
	}
	value, ok := u.ReadLine(label + suffix)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		value = initial
	}
	return value, true
}

/* ----- admin.KnowledgeView ----- */

func (u *adminUI) RenderList(entries []domain.KnowledgeEntry) {
	u.mu.Lock()
	u.lastEntries = entries
	u.mu.Unlock()

	headerColor.Println("--- Kiến thức ---")
	for _, entry := range entries {
		fmt.Printf("#%d • %s\n", entry.ID, entry.Title)
	}
}

func (u *adminUI) ShowEmpty() {
	u.mu.Lock()
	u.lastEntries = nil
	u.mu.Unlock()
	dimColor.Println("Chưa có dữ liệu")
}

func (u *adminUI) ShowForm(entry domain.KnowledgeEntry) {
	u.mu.Lock()
	u.formEntry = entry
	u.mu.Unlock()
	if entry.ID == 0 {
		dimColor.Println("(form trống — lưu sẽ tạo mục mới)")
		return
	}
	fmt.Printf("Đang sửa #%d: %s\n", entry.ID, entry.Title)
}

func (u *adminUI) FormEntry() domain.KnowledgeEntry {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.formEntry
}

func (u *adminUI) FindEntry(id int64) (domain.KnowledgeEntry, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, entry := range u.lastEntries {
		if entry.ID == id {
			return entry, true
		}
	}
	return domain.KnowledgeEntry{}, false
}

/* ----- admin.UserView ----- */

// RenderUsers is named apart from RenderList because adminUI backs both tabs.
func (u *adminUI) RenderUsers(users []domain.User) {
	u.mu.Lock()
	u.lastUsers = users
	u.mu.Unlock()

	headerColor.Println("--- Tài khoản ---")
	for _, user := range users {
		badges := ""
		if user.IsAdmin {
			badges += " " + badgeAdmin.Sprint("[ADMIN]")
		}
		if user.IsActive {
			badges += " " + okColor.Sprint("[ACTIVE]")
		} else {
			badges += " " + badgeLocked.Sprint("[LOCKED]")
		}
		fmt.Printf("#%d %s <%s>%s\n", user.ID, user.Username, user.Email, badges)
	}
}

func (u *adminUI) FindUser(id int64) (domain.User, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, user := range u.lastUsers {
		if user.ID == id {
			return user, true
		}
	}
	return domain.User{}, false
}
