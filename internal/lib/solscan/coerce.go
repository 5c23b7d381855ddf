package solscan

import (
	"encoding/json"
	"strconv"
	"strings"
)

// coerceFloat best-effort converts the loosely-typed values the API serves
// (numbers, numeric strings, json.Number) to a float64. Anything else
// reports false and the field is treated as absent.
func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
