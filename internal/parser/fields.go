package parser

import (
	"strconv"
	"strings"

	"copydesk/internal/domain"
)

// ParseMissingFields reads generated product fields. A JSON object is tried
// first; when none decodes, "key: value" lines are read instead. Only product
// field names are kept. Price becomes a float64, list fields become []string
// and every other value a string.
func ParseMissingFields(raw string) domain.FieldValues {
	out := domain.FieldValues{}
	if decoded, err := decodeJSON[map[string]any](raw); err == nil {
		for key, value := range decoded {
			setField(out, key, value)
		}
		return out
	}

	for _, line := range splitLines(trimCodeFence(raw)) {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.Trim(line[:idx], " \t-*\"'")
		value := strings.Trim(strings.TrimSpace(line[idx+1:]), "\",")
		setField(out, key, value)
	}
	return out
}

func setField(out domain.FieldValues, key string, value any) {
	key = strings.ToLower(strings.TrimSpace(key))
	switch {
	case key == domain.FieldPrice:
		if price, ok := toPrice(value); ok {
			out[key] = price
		}
	case domain.IsListField(key):
		if items := toList(value); len(items) > 0 {
			out[key] = items
		}
	case isScalarField(key):
		if s := toScalar(value); s != "" {
			out[key] = s
		}
	}
}

func isScalarField(key string) bool {
	for _, f := range domain.RequiredFields {
		if f == key {
			return true
		}
	}
	return false
}

func toPrice(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case string:
		cleaned := strings.TrimSpace(v)
		cleaned = strings.TrimPrefix(cleaned, "$")
		cleaned = strings.TrimSuffix(cleaned, "USD")
		cleaned = strings.ReplaceAll(strings.TrimSpace(cleaned), ",", "")
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if f < 0 {
		return 0, false
	}
	return f, true
}

func toList(value any) []string {
	var items []string
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			if s := toScalar(item); s != "" {
				items = append(items, s)
			}
		}
	case string:
		v = strings.Trim(strings.TrimSpace(v), "[]")
		for _, item := range strings.Split(v, ",") {
			if item = strings.Trim(strings.TrimSpace(item), "\"'"); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

func toScalar(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
