package queryparser

import (
	"regexp"
	"strings"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}
