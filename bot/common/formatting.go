package common

import (
	"fmt"
	"strings"
)

// OrPlaceholder returns value, or placeholder when value is blank
func OrPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

// FormatIconLink renders an image URL as a markdown link
func FormatIconLink(url string) string {
	if strings.TrimSpace(url) == "" {
		return PlaceholderUnknown
	}
	return fmt.Sprintf("[Icon](%s)", url)
}

// Truncate returns at most limit elements of items
func Truncate[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

// TruncateText shortens s to at most limit characters, ending with "..." when cut
func TruncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
