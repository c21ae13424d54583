package yamliny

import "slices"

// mergeMap returns a new map holding a with b layered on top. Nothing in the
// result aliases a or b, so callers may modify it freely.
func mergeMap(a, b map[string]any) map[string]any {
	result := cloneMap(a)
	for k, overlay := range b {
		base, ok := result[k].(map[string]any)
		if m, isMap := overlay.(map[string]any); ok && isMap {
			result[k] = mergeMap(base, m)
			continue
		}
		result[k] = cloneValue(overlay)
	}
	return result
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneMap(v)
	case []string:
		return slices.Clone(v)
	case []any:
		return slices.Clone(v)
	default:
		return v
	}
}
