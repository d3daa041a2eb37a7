package ai

import "strings"

// SanitizeModelText strips the markdown noise generative models wrap around
// otherwise valid JSON: every "```json" fence, every bare "```" fence, and a
// single leading case-insensitive "json" token. Fence removal must run before
// the leading-token check, since that check only matches at the string start.
func SanitizeModelText(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	if len(cleaned) >= 4 && strings.EqualFold(cleaned[:4], "json") {
		cleaned = cleaned[4:]
	}

	return strings.TrimSpace(cleaned)
}
