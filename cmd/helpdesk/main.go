// File: cmd/helpdesk/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vuhp/go-helpdesk/internal/api"
	"github.com/vuhp/go-helpdesk/internal/auth"
	"github.com/vuhp/go-helpdesk/internal/chat"
	"github.com/vuhp/go-helpdesk/internal/config"
	"github.com/vuhp/go-helpdesk/internal/conversations"
	"github.com/vuhp/go-helpdesk/internal/logging"
	"github.com/vuhp/go-helpdesk/internal/tokenstore"
)

const usage = `Lệnh:
  /login              đăng nhập
  /register           đăng ký tài khoản
  /logout             đăng xuất
  /list               tải lại danh sách hội thoại
  /search <từ khóa>   tìm trong danh sách hội thoại
  /open <id>          mở một cuộc hội thoại
  /new                cuộc hội thoại mới
  /delete <id>        xóa một cuộc hội thoại
  /pin <id>           ghim / bỏ ghim
  /export <file>      xuất bản ghi hội thoại ra HTML
  /whoami             thông tin phiên đăng nhập
  /quit               thoát
Nhập nội dung bất kỳ khác để chat.`

func main() {
	cfg := config.Load()
	logger := logging.NewLogger("helpdesk")

	storage, err := tokenstore.OpenSQLite(cfg.StateDir)
	if err != nil {
		log.Fatalf("Credential store error: %v", err)
	}
	tokens := tokenstore.NewUserStore(storage)

	client := api.New(cfg.BaseURL, tokens, logger)
	ui := newTerminalUI()

	// Session and syncer share the current conversation pointer.
	var session *chat.Session
	syncer := conversations.NewSyncer(client, tokens, pointerFunc{&session}, ui, logger)
	syncer.Timeout = cfg.RequestTimeout
	syncer.ServerPolicy.MaxRetries = cfg.MaxRetries
	syncer.NetworkPolicy.MaxRetries = cfg.MaxRetries
	session = chat.NewSession(client, tokens, ui, syncer, ui, logger)

	flow := auth.NewFlow(client, tokens, syncer, session, ui, ui, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Mirror of the browser's cross-tab storage listener: another process
	// changing the stored token refreshes this one's list.
	go func() {
		for range tokens.Watch(ctx, 2*time.Second) {
			logger.Debug("stored token changed externally")
			syncer.Load(ctx, "")
		}
	}()

	ui.ShowGreeting()
	if name := tokens.DisplayName(); name != "" {
		dimColor.Printf("Đã đăng nhập: %s\n", name)
	}
	syncer.Load(ctx, "")

	for {
		line, ok := ui.ReadLine("> ")
		if !ok {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "/") {
			session.Send(ctx, line)
			continue
		}

		command, arg := splitCommand(line)
		switch command {
		case "/quit", "/exit":
			return
		case "/help":
			fmt.Println(usage)
		case "/login":
			username, _ := ui.ReadLine("Tài khoản: ")
			password, _ := ui.ReadLine("Mật khẩu: ")
			flow.Login(ctx, strings.TrimSpace(username), strings.TrimSpace(password))
		case "/register":
			username, _ := ui.ReadLine("Tài khoản: ")
			email, _ := ui.ReadLine("Email: ")
			password, _ := ui.ReadLine("Mật khẩu: ")
			flow.Register(ctx, strings.TrimSpace(username), strings.TrimSpace(email), strings.TrimSpace(password))
		case "/logout":
			flow.Logout(ctx)
		case "/list":
			syncer.Load(ctx, "")
		case "/search":
			syncer.Load(ctx, arg)
		case "/new":
			session.NewConversation()
		case "/open":
			if id, ok := parseID(arg); ok {
				session.LoadConversation(ctx, id)
			}
		case "/delete":
			if id, ok := parseID(arg); ok {
				session.DeleteConversation(ctx, id)
			}
		case "/pin":
			if id, ok := parseID(arg); ok {
				item, found := ui.Find(id)
				if !found {
					fmt.Println("Không tìm thấy cuộc hội thoại này trong danh sách")
					continue
				}
				session.TogglePin(ctx, item.Conversation)
			}
		case "/export":
			exportTranscript(session, arg)
		case "/whoami":
			printSessionInfo(tokens)
		default:
			fmt.Println(usage)
		}
	}
}

// pointerFunc defers the session lookup; the syncer and the session are
// mutually dependent at wiring time.
type pointerFunc struct {
	session **chat.Session
}

func (p pointerFunc) Current() *int64 {
	if *p.session == nil {
		return nil
	}
	return (*p.session).Current()
}

func (p pointerFunc) Reset() {
	if *p.session != nil {
		(*p.session).Reset()
	}
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func parseID(arg string) (int64, bool) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		fmt.Println("Cần một id hợp lệ")
		return 0, false
	}
	return id, true
}

func exportTranscript(session *chat.Session, path string) {
	if path == "" {
		fmt.Println("Cần tên file, ví dụ: /export transcript.html")
		return
	}
	file, err := os.Create(path)
	if err != nil {
		errColor.Printf("Không thể tạo file: %v\n", err)
		return
	}
	defer file.Close()
	if err := session.ExportTranscript(file); err != nil {
		errColor.Printf("Xuất thất bại: %v\n", err)
		return
	}
	fmt.Printf("Đã xuất bản ghi ra %s\n", path)
}

func printSessionInfo(tokens *tokenstore.Store) {
	token := tokens.Get()
	if token == "" {
		fmt.Println("Chưa đăng nhập")
		return
	}
	if name := tokens.DisplayName(); name != "" {
		fmt.Printf("Đăng nhập với tài khoản %s\n", name)
	}
	if info, err := auth.PeekToken(token); err == nil {
		if info.Subject != "" {
			fmt.Printf("Chủ thể token: %s\n", info.Subject)
		}
		if !info.ExpiresAt.IsZero() {
			fmt.Printf("Token hết hạn: %s\n", info.ExpiresAt.Local().Format("2006-01-02 15:04"))
		}
	}
}
