// Package jsonutil provides small helpers for decoding loosely shaped JSON
// coming back from the menu API: wrapped errors, safe map lookups, and
// scalar-to-string conversion for opaque identifiers.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// GetString safely extracts a string value from a map[string]interface{}.
// Returns the value if it's a string, otherwise returns empty string.
func GetString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// FirstString returns the first non-empty string found under keys, in order.
func FirstString(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v := GetString(m, k); v != "" {
			return v
		}
	}
	return ""
}

// ToString converts an interface{} value to a string representation.
// Whole float64 values are formatted without a fractional part so numeric
// JSON ids round-trip as "42" rather than "42.000000".
func ToString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if math.Abs(val) < 1<<63 && val == math.Trunc(val) {
			return strconv.FormatInt(int64(val), 10)
		}
		if val == math.Trunc(val) {
			return strconv.FormatFloat(val, 'f', -1, 64)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
