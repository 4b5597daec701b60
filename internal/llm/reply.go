package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseObject extracts the single JSON object from a model reply. Models
// routinely wrap the object in markdown fences or surround it with prose, so
// the fences are stripped and the outermost brace pair is located before
// unmarshalling. A reply with no parseable object is a fatal error for the
// request.
func ParseObject(reply string) (map[string]interface{}, error) {
	cleaned := extractJSON(stripFences(reply))
	if cleaned == "" {
		return nil, fmt.Errorf("no JSON object in reply")
	}

	var out map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, fmt.Errorf("unmarshal reply object: %w", err)
	}
	return out, nil
}

func stripFences(s string) string {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "```json")
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}

func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return raw[start : end+1]
}
