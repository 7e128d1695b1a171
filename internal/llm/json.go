package llm

import "strings"

// cleanMarkdownWrapper strips ```json fences that models sometimes emit
// despite being told not to.
func cleanMarkdownWrapper(content string) string {
	s := strings.TrimSpace(content)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}

// extractJSON slices the response down to the first "{" through the last
// "}", tolerating commentary the backend may prepend or append. An empty
// return means no JSON object was found.
func extractJSON(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return content[start : end+1]
}
