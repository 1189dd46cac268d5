package llmprovider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFinishReason(t *testing.T) {
	tests := map[string]FinishReason{
		"":                   FinishStop,
		"STOP":               FinishStop,
		"stop":               FinishStop,
		"MAX_TOKENS":         FinishMaxTokens,
		"length":             FinishMaxTokens,
		"SAFETY":             FinishSafety,
		"PROHIBITED_CONTENT": FinishSafety,
		"BLOCKLIST":          FinishSafety,
		"SPII":               FinishSafety,
		"content_filter":     FinishSafety,
		"RECITATION":         FinishRecitation,
		"LANGUAGE":           FinishReason("other:LANGUAGE"),
		"tool_calls":         FinishReason("other:tool_calls"),
	}

	for raw, want := range tests {
		got := NormalizeFinishReason(raw)
		assert.Equal(t, want, got, "raw %q", raw)
	}

	assert.True(t, NormalizeFinishReason("OTHER").IsOther())
	assert.False(t, FinishStop.IsOther())
}
