package metadata

import (
	"math"
	"strconv"
)

// SanitizeTree walks a document tree and makes it ledger-acceptable:
// fractional numbers become strings (ledger metadata only allows integers),
// and nil values are dropped. Maps and slices are rebuilt, never mutated.
func SanitizeTree(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if item == nil {
				continue
			}
			if cleaned := SanitizeTree(item); cleaned != nil {
				out[k] = cleaned
			}
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			if item == nil {
				continue
			}
			if cleaned := SanitizeTree(item); cleaned != nil {
				out = append(out, cleaned)
			}
		}
		return out
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return int64(val)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return SanitizeTree(float64(val))
	default:
		return v
	}
}
