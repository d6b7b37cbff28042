// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock removes a markdown code fence wrapped around a JSON payload.
// Models sometimes fence JSON even in JSON mode. Anything else is left untouched
// so malformed output still fails to parse.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}

	text = strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")

	// Drop a language identifier such as "json" on the opening fence line
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[") {
			text = text[idx+1:]
		}
	}

	return strings.TrimSpace(text)
}
