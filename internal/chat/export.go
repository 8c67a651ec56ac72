// File: internal/chat/export.go
package chat

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
)

const exportHeader = `<!DOCTYPE html>
<html lang="vi">
<head><meta charset="utf-8"><title>Helpdesk transcript</title></head>
<body>
`

// ExportTranscript writes the current transcript as a standalone HTML page.
// Assistant answers are markdown; they are rendered, while user messages are
// escaped verbatim.
func (s *Session) ExportTranscript(w io.Writer) error {
	if _, err := io.WriteString(w, exportHeader); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}

	for _, entry := range s.Transcript() {
		if entry.Role == RoleUser {
			line := fmt.Sprintf("<div class=\"user\">%s</div>\n", html.EscapeString(entry.Text))
			if _, err := io.WriteString(w, line); err != nil {
				return fmt.Errorf("failed to write transcript: %w", err)
			}
			continue
		}

		var rendered bytes.Buffer
		if err := goldmark.Convert([]byte(entry.Text), &rendered); err != nil {
			// Fall back to the escaped source when the markdown is broken.
			rendered.Reset()
			rendered.WriteString(html.EscapeString(entry.Text))
		}
		line := fmt.Sprintf("<div class=\"bot\">%s</div>\n", rendered.String())
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("failed to write transcript: %w", err)
		}
	}

	if _, err := io.WriteString(w, "</body>\n</html>\n"); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}
