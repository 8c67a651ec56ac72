// File: internal/conversations/timeago.go
package conversations

import (
	"fmt"
	"time"
)

// isoLayouts covers the backend's datetime.isoformat() output, with or
// without fractional seconds or an explicit zone.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// TimeAgo formats a backend timestamp as a humanized relative age.
// Timestamps without a zone suffix are read as UTC; the backend emits naive
// UTC datetimes and the original client relied on that, so this keeps the
// same interpretation. Empty or unparseable input yields "".
func TimeAgo(raw string, now time.Time) string {
	if raw == "" {
		return ""
	}

	var parsed time.Time
	var err error
	for _, layout := range isoLayouts {
		parsed, err = time.Parse(layout, raw)
		if err == nil {
			break
		}
	}
	if err != nil {
		return ""
	}

	diff := now.Sub(parsed)
	if diff < 0 {
		diff = 0
	}

	seconds := int64(diff.Seconds())
	switch {
	case seconds < 60:
		return "vừa xong"
	case seconds < 3600:
		return fmt.Sprintf("%d phút trước", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%d giờ trước", seconds/3600)
	default:
		return fmt.Sprintf("%d ngày trước", seconds/86400)
	}
}
