package ingestion

import (
	"sort"
	"strconv"
	"strings"
)

// asString renders a scalar JSON value as text. Objects and arrays become "".
func asString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// itemText renders one list item. Objects carrying a "name" use it,
// anything else is flattened.
func itemText(v any) string {
	if obj, ok := v.(map[string]any); ok {
		if name := asString(obj["name"]); name != "" {
			return name
		}
	}
	return textBlob(v)
}

// asStringList accepts an array, a comma-separated string or a single value.
func asStringList(v any) []string {
	switch val := v.(type) {
	case nil:
		return []string{}
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := itemText(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		out := []string{}
		for _, part := range strings.Split(val, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	default:
		if s := itemText(val); s != "" {
			return []string{s}
		}
		return []string{}
	}
}

// textBlob flattens any JSON value into a space-joined string.
// Map keys are visited in sorted order so the result is stable.
func textBlob(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := textBlob(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if s := textBlob(val[k]); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	default:
		return asString(val)
	}
}

// record is a JSON object whose known keys are consumed one by one;
// whatever is left over ends up in the entry's Extra text.
type record map[string]any

// take returns the flattened value of the first non-empty key and removes it.
// Other aliases stay in the record so their text survives in Extra.
func (r record) take(keys ...string) string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok {
			continue
		}
		s := textBlob(v)
		delete(r, k)
		if s != "" {
			return s
		}
	}
	return ""
}

// takeList returns the merged lists under keys and removes them.
func (r record) takeList(keys ...string) []string {
	var out []string
	for _, k := range keys {
		if v, ok := r[k]; ok {
			out = append(out, asStringList(v)...)
			delete(r, k)
		}
	}
	return out
}

// rest flattens the remaining keys in sorted order.
func (r record) rest() []string {
	if len(r) == 0 {
		return nil
	}
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if s := textBlob(r[k]); s != "" {
			out = append(out, s)
		}
	}
	return out
}
