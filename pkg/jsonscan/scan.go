// Package jsonscan pulls a single JSON object out of free-form LLM output that may
// wrap it in markdown fences, commentary, or trailing text.
package jsonscan

import (
	"regexp"
	"strings"
)

// fencePattern matches the first fenced block, optionally tagged (```json, ```JSON, ```).
var fencePattern = regexp.MustCompile("(?s)```[A-Za-z0-9_-]*\\s*(.*?)\\s*```")

// StripCodeFence returns the interior of the first fenced code block in text.
// Text without a complete fenced block is returned trimmed but otherwise unchanged.
func StripCodeFence(text string) string {
	m := fencePattern.FindStringSubmatch(text)
	if m == nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(m[1])
}

// MatchObject returns the span from the first '{' in text to its matching '}'.
// Braces inside JSON string literals are ignored. ok is false when text has no '{'
// or the object is never closed; in the latter case span runs to the end of text.
func MatchObject(text string) (span string, ok bool) {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return text, false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return text[start:], false
}

// Extract applies StripCodeFence and then MatchObject. ok is false when no
// closed object was found; even when ok is true the span may not be valid JSON.
func Extract(text string) (span string, ok bool) {
	span, ok = MatchObject(StripCodeFence(text))
	return strings.TrimSpace(span), ok
}
