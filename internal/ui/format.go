package ui

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// NotAvailable is the marker rendered for any metadata field the extractor
// could not supply.
const NotAvailable = "N/A"

// FormatDuration renders seconds as "Xm Ys". Zero or negative durations are
// treated as unknown.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

// FormatSize renders a byte count in megabytes with two decimals.
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
}

// FormatViews renders a view count with thousands separators. Negative counts
// mean the extractor did not report one.
func FormatViews(count int64) string {
	if count < 0 {
		return NotAvailable
	}
	return humanize.Comma(count)
}

// Truncate caps a string at limit characters, replacing the tail with "..."
// when it is longer.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
