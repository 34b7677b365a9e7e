package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FormatValue turns a decoded JSON value into display text. Strings and
// lists of strings are reported as markdown so callers can pass them through
// the markup converter. References ({"name": ...} objects) collapse to their
// name.
func FormatValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		if v {
			return "Yes", false
		}
		return "No", false
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), false
	case int:
		return strconv.Itoa(v), false
	case int64:
		return strconv.FormatInt(v, 10), false
	case json.Number:
		return v.String(), false
	case map[string]any:
		if name, ok := referenceName(v); ok {
			return name, false
		}
		return compactJSON(v), false
	case []any:
		return formatList(v)
	case []string:
		return strings.Join(v, "\n\n"), true
	default:
		return fmt.Sprint(v), false
	}
}

func formatList(values []any) (string, bool) {
	if len(values) == 0 {
		return "", false
	}

	allStrings := true
	parts := make([]string, 0, len(values))
	for _, item := range values {
		switch v := item.(type) {
		case string:
			parts = append(parts, v)
		case map[string]any:
			allStrings = false
			if name, ok := referenceName(v); ok {
				parts = append(parts, name)
				continue
			}
			parts = append(parts, compactJSON(v))
		default:
			allStrings = false
			text, _ := FormatValue(v)
			parts = append(parts, text)
		}
	}
	if allStrings {
		return strings.Join(parts, "\n\n"), true
	}
	return strings.Join(parts, ", "), false
}

func referenceName(ref map[string]any) (string, bool) {
	name, ok := ref["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}

func compactJSON(value any) string {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(payload)
}
