// Package render formats a response snapshot for display.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/shhac/burrow/internal/domain"
)

// StatusLine is the text shown next to "Status:".
func StatusLine(s *domain.Snapshot) string {
	if s == nil {
		return ""
	}
	if s.Failed() {
		return s.StatusText
	}
	if s.StatusText != "" {
		return s.StatusText
	}
	return fmt.Sprintf("%d", s.Status)
}

// FormatElapsed renders a duration in whole milliseconds, e.g. "123 ms".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%d ms", d.Milliseconds())
}

// FormatSize renders a byte count in SI units, e.g. "1.2 kB".
func FormatSize(n int) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// BodyText is the pretty view of the body: indented JSON when the body is
// JSON, otherwise the raw text. A failed exchange shows its error.
func BodyText(s *domain.Snapshot) string {
	if s == nil {
		return ""
	}
	if s.Failed() {
		return s.Err
	}
	if len(s.Body) > 0 && gjson.ValidBytes(s.Body) {
		return string(pretty.Pretty(s.Body))
	}
	return string(s.Body)
}

// RawText is the body exactly as received.
func RawText(s *domain.Snapshot) string {
	if s == nil {
		return ""
	}
	if s.Failed() {
		return s.Err
	}
	return string(s.Body)
}

// Filter applies a gjson path to a JSON body and pretty-prints the match.
// An empty path returns the full pretty body. ok is false when the body is
// not JSON or the path matches nothing.
func Filter(s *domain.Snapshot, path string) (string, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return BodyText(s), true
	}
	if s == nil || s.Failed() || !gjson.ValidBytes(s.Body) {
		return "", false
	}

	res := gjson.GetBytes(s.Body, path)
	if !res.Exists() {
		return "", false
	}
	if res.IsObject() || res.IsArray() {
		return string(pretty.Pretty([]byte(res.Raw))), true
	}
	return res.Raw, true
}

// HeaderRows returns the label/value pairs for the header grid, one per
// response header in snapshot order.
func HeaderRows(s *domain.Snapshot) [][2]string {
	if s == nil {
		return nil
	}
	rows := make([][2]string, 0, len(s.Headers))
	for _, kv := range s.Headers {
		rows = append(rows, [2]string{kv.Key, kv.Value})
	}
	return rows
}
