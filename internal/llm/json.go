package llm

import "strings"

// CleanJSON strips a surrounding markdown code fence from an oracle
// response. Models asked for JSON-only output still fence it now and
// then. Anything that is not raw or fenced JSON is left for the caller's
// unmarshal to reject.
func CleanJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
