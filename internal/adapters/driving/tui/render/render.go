// Package render holds shared formatting helpers for the TUI views.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/styles"
)

// Truncate shortens s to max runes, appending an ellipsis when cut. Values
// of max below 4 still produce a usable marker.
func Truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// ShortDate formats a timestamp for list rows. Zero times render empty.
func ShortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

// Tags renders lead chips on a single line.
func Tags(s *styles.Styles, leads []string) string {
	if len(leads) == 0 {
		return ""
	}
	chips := make([]string, 0, len(leads))
	for _, lead := range leads {
		chips = append(chips, s.Tag.Render("#"+lead))
	}
	return strings.Join(chips, " ")
}

// Confidence renders a score as a styled percentage.
func Confidence(s *styles.Styles, score float64) string {
	return s.Confidence(score).Render(fmt.Sprintf("%3.0f%%", score*100))
}
