package discord

import (
	"fmt"
	"strings"
)

// FormatCount renders a number with a K/M suffix, dropping trailing zeros:
// 950 -> "950", 1500 -> "1.5K", 2000 -> "2K", 1200000 -> "1.2M".
func FormatCount(n int64) string {
	switch {
	case n >= 1000000:
		return trimZero(fmt.Sprintf("%.1fM", float64(n)/1000000))
	case n >= 1000:
		return trimZero(fmt.Sprintf("%.1fK", float64(n)/1000))
	default:
		return fmt.Sprintf("%d", n)
	}
}

// trimZero turns "2.0K" into "2K" but leaves "2.5K" alone.
func trimZero(s string) string {
	suffix := s[len(s)-1:]
	num := strings.TrimSuffix(strings.TrimSuffix(s[:len(s)-1], "0"), ".")
	return num + suffix
}
