package analysis

import (
	"encoding/json"
	"strings"
)

// extractObject returns the JSON object embedded in free-form model output.
// The substring from the first '{' to the last '}' is tried first; when the
// model emitted trailing prose or a second object, it falls back to the
// first balanced object. Returns "" when no parseable object exists.
func extractObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return ""
	}

	candidate := text[start : end+1]
	if json.Valid([]byte(candidate)) {
		return candidate
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == '{':
			depth++
		case !inString && c == '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// Parse extracts the JSON object embedded in free-form model output and
// coerces it into an Analysis. Anything around the object (prose, markdown
// fences) is discarded. On any failure the zero Analysis is returned;
// callers treat the result as best-effort and rely on schema defaults.
func Parse(text string) Analysis {
	var a Analysis

	obj := extractObject(text)
	if obj == "" {
		return a
	}
	if err := json.Unmarshal([]byte(obj), &a); err != nil {
		return Analysis{}
	}

	a.applyDefaults()
	return a
}

// ParseRaw behaves like Parse but keeps the response as a generic map, used
// for the raw_analysis audit copy.
func ParseRaw(text string) map[string]interface{} {
	obj := extractObject(text)
	if obj == "" {
		return map[string]interface{}{}
	}

	var m map[string]interface{}
	if err := json.Unmarshal([]byte(obj), &m); err != nil {
		return map[string]interface{}{}
	}
	return m
}
