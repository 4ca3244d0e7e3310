// Package convert coerces loosely typed config values into the typed
// settings the benchmark reads.
//
// TOML decodes integers as int64 and arrays as []any, while values set
// from flags or tests arrive as int and []int. Both config stores accept
// either form.
package convert

// Int returns val as an int. Floats are truncated.
func Int(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// IntSlice returns val as a fresh []int, skipping elements that are not
// numbers. It returns nil when val is not a slice.
func IntSlice(val any) []int {
	switch v := val.(type) {
	case []int:
		return append([]int(nil), v...)
	case []int64:
		result := make([]int, 0, len(v))
		for _, n := range v {
			result = append(result, int(n))
		}
		return result
	case []any:
		result := make([]int, 0, len(v))
		for _, item := range v {
			if n, ok := Int(item); ok {
				result = append(result, n)
			}
		}
		return result
	default:
		return nil
	}
}
