// File: cmd/helpdesk/ui.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/vuhp/go-helpdesk/internal/conversations"
)

var (
	botColor   = color.New(color.FgCyan)
	userColor  = color.New(color.FgGreen)
	dimColor   = color.New(color.Faint)
	errColor   = color.New(color.FgRed)
	pinColor   = color.New(color.FgYellow)
	titleColor = color.New(color.Bold)
)

// terminalUI implements every presenter interface of the chat surface on
// stdin/stdout.
type terminalUI struct {
	reader *bufio.Reader

	mu        sync.Mutex
	lastItems []conversations.Item
}

func newTerminalUI() *terminalUI {
	return &terminalUI{reader: bufio.NewReader(os.Stdin)}
}

// ReadLine reads one line of input, without the trailing newline.
func (u *terminalUI) ReadLine(prompt string) (string, bool) {
	fmt.Print(prompt)
	line, err := u.reader.ReadString('\n')
	if err != nil {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// Confirm implements the yes/no dialogs (y = yes).
func (u *terminalUI) Confirm(prompt string) bool {
	answer, ok := u.ReadLine(prompt + " [y/N] ")
	if !ok {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

/* ----- chat.TranscriptView ----- */

func (u *terminalUI) AppendUser(text string) {
	userColor.Printf("bạn> ")
	fmt.Println(text)
}

func (u *terminalUI) AppendBot(text string) {
	botColor.Printf("bot> ")
	fmt.Println(text)
}

func (u *terminalUI) ShowTyping() {
	dimColor.Println("bot đang trả lời...")
}

func (u *terminalUI) HideTyping() {}

func (u *terminalUI) ShowGreeting() {
	botColor.Println("bot> Xin chào 👋 Tôi có thể giúp bạn về CNTT.")
}

func (u *terminalUI) ShowEmptyConversation() {
	dimColor.Println("Chưa có tin nhắn nào trong cuộc hội thoại này.")
}

func (u *terminalUI) ShowSignInHint() {
	dimColor.Println("Đăng nhập để lưu lịch sử chat (/login)")
}

func (u *terminalUI) Notice(text string) {
	fmt.Println(text)
}

/* ----- auth.View ----- */

func (u *terminalUI) Welcome(username string) {
	botColor.Printf("bot> 👋 Xin chào %s!\n", username)
}

func (u *terminalUI) ShowLoggedOut() {
	botColor.Println("bot> 👋 Bạn đã đăng xuất")
}

/* ----- conversations.ListView ----- */

func (u *terminalUI) ShowSignInPrompt() {
	u.setItems(nil)
	dimColor.Println("Đăng nhập để xem lịch sử chat")
}

func (u *terminalUI) ShowSessionExpired() {
	u.setItems(nil)
	dimColor.Println("Phiên đăng nhập đã hết hạn. Vui lòng đăng nhập lại.")
}

func (u *terminalUI) ShowEmpty() {
	u.setItems(nil)
	dimColor.Println("Chưa có cuộc hội thoại nào")
}

func (u *terminalUI) ShowInvalidData() {
	u.setItems(nil)
	errColor.Println("Dữ liệu không hợp lệ")
}

func (u *terminalUI) ShowError(status int) {
	u.setItems(nil)
	errColor.Printf("Lỗi khi tải lịch sử chat (%d)\n", status)
}

func (u *terminalUI) ShowConnecting(attempt int) {
	dimColor.Printf("Đang kết nối đến server... (thử lại lần %d)\n", attempt)
}

func (u *terminalUI) ShowConnectionLost() {
	errColor.Println("Lỗi kết nối đến server. Vui lòng kiểm tra backend đã chạy chưa.")
}

func (u *terminalUI) Render(items []conversations.Item) {
	u.setItems(items)

	titleColor.Println("--- Cuộc hội thoại ---")
	for _, item := range items {
		marker := "  "
		if item.Active {
			marker = "* "
		}
		pin := "  "
		if item.Conversation.IsPinned {
			pin = pinColor.Sprint("⭐")
		}
		fmt.Printf("%s%s [%d] %s\n", marker, pin, item.Conversation.ID, item.Conversation.DisplayTitle())
		dimColor.Printf("      %d tin nhắn · %s\n", item.Conversation.MessageCount, item.LastActivity)
	}
}

func (u *terminalUI) setItems(items []conversations.Item) {
	u.mu.Lock()
	u.lastItems = items
	u.mu.Unlock()
}

// Find returns the last-rendered conversation with the given id; TogglePin
// needs its current pin state.
func (u *terminalUI) Find(id int64) (conversations.Item, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, item := range u.lastItems {
		if item.Conversation.ID == id {
			return item, true
		}
	}
	return conversations.Item{}, false
}
