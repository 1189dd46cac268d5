package llmprovider

import "strings"

// FinishReason is a provider-neutral completion reason.
type FinishReason string

const (
	FinishStop       FinishReason = "stop"
	FinishMaxTokens  FinishReason = "max_tokens"
	FinishSafety     FinishReason = "safety"
	FinishRecitation FinishReason = "recitation"
)

const otherFinishPrefix = "other:"

// NormalizeFinishReason maps Gemini and OpenAI-style reasons onto FinishReason.
// An empty reason counts as stop. Unknown reasons come back as "other:<raw>".
func NormalizeFinishReason(raw string) FinishReason {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", "STOP", "FINISH_REASON_UNSPECIFIED":
		return FinishStop
	case "MAX_TOKENS", "LENGTH":
		return FinishMaxTokens
	case "SAFETY", "PROHIBITED_CONTENT", "BLOCKLIST", "SPII", "CONTENT_FILTER", "IMAGE_SAFETY":
		return FinishSafety
	case "RECITATION":
		return FinishRecitation
	default:
		return FinishReason(otherFinishPrefix + raw)
	}
}

// IsOther reports whether r is an unrecognized reason.
func (r FinishReason) IsOther() bool {
	return strings.HasPrefix(string(r), otherFinishPrefix)
}
