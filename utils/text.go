package utils

import "strings"

// MaxMessageLen is the SMS-style ceiling on composed notification text.
const MaxMessageLen = 160

// Slugify turns a condition label into a trigger-safe identifier:
// "Glowing skin" -> "glowing_skin".
func Slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}

// TruncateMessage enforces the message-length ceiling, counted in runes.
// Over-length text is cut to 157 characters plus an ellipsis.
func TruncateMessage(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxMessageLen {
		return s
	}
	return string(runes[:MaxMessageLen-3]) + "..."
}
