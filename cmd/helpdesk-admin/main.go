// File: cmd/helpdesk-admin/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/vuhp/go-helpdesk/internal/admin"
	"github.com/vuhp/go-helpdesk/internal/api"
	"github.com/vuhp/go-helpdesk/internal/auth"
	"github.com/vuhp/go-helpdesk/internal/config"
	"github.com/vuhp/go-helpdesk/internal/domain"
	"github.com/vuhp/go-helpdesk/internal/logging"
	"github.com/vuhp/go-helpdesk/internal/tokenstore"
)

const usage = `Lệnh:
  k                danh sách kiến thức
  ksel <id>        chọn một mục vào form
  knew             form trống (tạo mới)
  ksave            lưu form (PUT khi có id, POST khi không)
  u                danh sách tài khoản
  uedit <id>       sửa tài khoản
  upass <id>       đổi mật khẩu tài khoản
  udel <id>        xóa tài khoản
  logout           đăng xuất admin
  quit             thoát`

// userViewAdapter maps the accounts tab onto the shared terminal UI.
type userViewAdapter struct{ ui *adminUI }

func (a userViewAdapter) RenderList(users []domain.User) { a.ui.RenderUsers(users) }
func (a userViewAdapter) Notice(text string)             { a.ui.Notice(text) }

func main() {
	cfg := config.Load()
	logger := logging.NewLogger("helpdesk-admin")

	storage, err := tokenstore.OpenSQLite(cfg.StateDir)
	if err != nil {
		log.Fatalf("Credential store error: %v", err)
	}
	tokens := tokenstore.NewAdminStore(storage)

	client := api.New(cfg.BaseURL, tokens, logger)
	ui := newAdminUI()

	flow := auth.NewAdminFlow(client, tokens, ui, ui, logger)
	knowledge := admin.NewKnowledgeEditor(client, ui, flow, logger)
	users := admin.NewUserEditor(client, userViewAdapter{ui}, ui, flow, logger)

	ctx := context.Background()

	if flow.EnsureSession(ctx) {
		knowledge.LoadList(ctx)
	}

	for {
		if !ui.LoggedIn() {
			if !login(ctx, ui, flow) {
				return
			}
			knowledge.LoadList(ctx)
			continue
		}

		line, ok := ui.ReadLine("admin> ")
		if !ok {
			return
		}
		command, arg := splitCommand(strings.TrimSpace(line))
		switch command {
		case "":
		case "quit", "exit":
			return
		case "help":
			fmt.Println(usage)
		case "k":
			knowledge.LoadList(ctx)
		case "ksel":
			if id, ok := parseID(arg); ok {
				entry, found := ui.FindEntry(id)
				if !found {
					fmt.Println("Không tìm thấy mục này, chạy 'k' trước")
					continue
				}
				knowledge.Select(entry)
			}
		case "knew":
			knowledge.NewItem()
		case "ksave":
			form := ui.FormEntry()
			title, ok := ui.Prompt("Tiêu đề:", form.Title)
			if !ok {
				continue
			}
			content, ok := ui.Prompt("Nội dung:", form.Content)
			if !ok {
				continue
			}
			knowledge.Save(ctx, title, content)
		case "u":
			users.LoadList(ctx)
		case "uedit":
			if id, ok := parseID(arg); ok {
				user, found := ui.FindUser(id)
				if !found {
					fmt.Println("Không tìm thấy tài khoản này, chạy 'u' trước")
					continue
				}
				users.Edit(ctx, user)
			}
		case "upass":
			if id, ok := parseID(arg); ok {
				users.ChangePassword(ctx, id)
			}
		case "udel":
			if id, ok := parseID(arg); ok {
				users.Remove(ctx, id)
			}
		case "logout":
			flow.Logout(ctx)
		default:
			fmt.Println(usage)
		}
	}
}

func login(ctx context.Context, ui *adminUI, flow *auth.AdminFlow) bool {
	username, ok := ui.ReadLine("Tài khoản: ")
	if !ok {
		return false
	}
	password, ok := ui.ReadLine("Mật khẩu: ")
	if !ok {
		return false
	}
	flow.Login(ctx, strings.TrimSpace(username), strings.TrimSpace(password))
	return true
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
