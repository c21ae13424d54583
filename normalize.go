package yamliny

import (
	"encoding/json"
	"fmt"
)

// Normalize converts a generically decoded tree, such as the output of
// encoding/json with UseNumber, into the shape Loads produces: nil, string,
// []string and map[string]any. json.Number keeps its literal text and a
// []any must hold only strings. Any other type is an error.
func Normalize(data map[string]any) (map[string]any, error) {
	return normalizeMap(data, "")
}

func normalizeMap(data map[string]any, path string) (map[string]any, error) {
	result := make(map[string]any, len(data))
	for k, v := range data {
		nv, err := normalizeValue(v, joinPath(path, k))
		if err != nil {
			return nil, err
		}
		result[k] = nv
	}
	return result, nil
}

func normalizeValue(v any, path string) (any, error) {
	switch val := v.(type) {
	case nil, string:
		return val, nil
	case json.Number:
		return val.String(), nil
	case []string:
		return val, nil
	case []any:
		items := make([]string, len(val))
		for i, item := range val {
			s, err := normalizeValue(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			str, ok := s.(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d]: array elements must be scalars, got %T", path, i, item)
			}
			items[i] = str
		}
		return items, nil
	case map[string]any:
		return normalizeMap(val, path)
	default:
		return nil, fmt.Errorf("%s: unsupported value type %T", path, v)
	}
}
