// Package textkv parses the plain "key: value" files that drive the design
// directory (Colors.txt, Descriptions.txt, Fonts.txt, Style.txt).
package textkv

import (
	"strings"

	"github.com/spf13/cast"
)

// Parse splits content into lines and collects key/value pairs. Blank lines and
// lines starting with '#' are skipped, as is any line without a colon. The line
// is split on the first colon only, both sides trimmed. Duplicate keys are
// last-wins.
func Parse(content string) map[string]string {
	result := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		idx := strings.Index(trimmed, ":")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(trimmed[:idx])
		value := strings.TrimSpace(trimmed[idx+1:])
		result[key] = value
	}
	return result
}

// String returns the value for key, or def when the key is absent or empty.
func String(kv map[string]string, key, def string) string {
	if v, ok := kv[key]; ok && v != "" {
		return v
	}
	return def
}

// Float returns the value for key coerced to float64, or def when the key is
// absent or the value does not parse.
func Float(kv map[string]string, key string, def float64) float64 {
	v, ok := kv[key]
	if !ok {
		return def
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return def
	}
	return f
}

// Int returns the value for key coerced to int, or def when the key is absent
// or the value does not parse.
func Int(kv map[string]string, key string, def int) int {
	v, ok := kv[key]
	if !ok {
		return def
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return def
	}
	return i
}
