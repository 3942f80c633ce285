package discord

import "strings"

// Discord hard limits on message fields. Payloads exceeding these are
// rejected by the API with a 400, so every user-sourced string is clamped
// before dispatch.
const (
	MaxContentLength     = 2000
	MaxTitleLength       = 256
	MaxDescriptionLength = 4096
	MaxFieldNameLength   = 256
	MaxFieldValueLength  = 1024
)

const ellipsis = "…"

// Truncate clamps s to limit characters. Oversized input is cut to limit-1
// runes with an ellipsis appended, so the result is exactly limit runes.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + ellipsis
}

// markdownEscaper backslash-prefixes the characters Discord renders as
// formatting, so user-sourced text (item names, milestone descriptions)
// cannot inject markdown into an embed.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	`~`, `\~`,
	"`", "\\`",
	`|`, `\|`,
	`>`, `\>`,
	`#`, `\#`,
	`-`, `\-`,
	`[`, `\[`,
	`]`, `\]`,
	`(`, `\(`,
	`)`, `\)`,
)

// EscapeMarkdown escapes Discord markdown control characters in s.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
