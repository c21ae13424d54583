package yamliny

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const indentUnit = "  "

var keyPattern = regexp.MustCompile(`^[\p{L}\p{N}_-]+$`)

// serialize converts a map[string]any to YAMLiny text.
func serialize(data map[string]any) (string, error) {
	var b strings.Builder
	if err := writeMap(&b, data, 0, ""); err != nil {
		return "", err
	}
	return b.String(), nil
}

// writeMap writes a map's entries at the given indent level.
func writeMap(b *strings.Builder, data map[string]any, indent int, path string) error {
	for _, k := range sortedKeys(data) {
		if err := writeEntry(b, k, data[k], indent, joinPath(path, k)); err != nil {
			return err
		}
	}
	return nil
}

// writeEntry writes a single key and its value. Empty maps are written like
// nil, so they read back as nil.
func writeEntry(b *strings.Builder, key string, value any, indent int, path string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%s: key %q cannot be written", path, key)
	}
	prefix := strings.Repeat(indentUnit, indent) + key + delimiter

	var text string
	switch v := value.(type) {
	case nil:
	case map[string]any:
		b.WriteString(prefix)
		b.WriteString("\n")
		return writeMap(b, v, indent+1, path)
	case string:
		if err := checkScalar(v); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		text = v
	case []string:
		s, err := formatArray(v)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		text = s
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("%s[%d]: unsupported element type %T", path, i, item)
			}
			items[i] = s
		}
		s, err := formatArray(items)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		text = s
	default:
		return fmt.Errorf("%s: unsupported value type %T", path, value)
	}

	line := prefix
	if text != "" {
		line += " " + text
	}
	if removeComment(line) != line {
		return fmt.Errorf("%s: value %q would be read as a comment", path, text)
	}
	b.WriteString(line)
	b.WriteString("\n")
	return nil
}

func checkScalar(s string) error {
	switch {
	case s == "":
		return fmt.Errorf("empty string cannot be written")
	case strings.TrimSpace(s) != s:
		return fmt.Errorf("value %q has surrounding whitespace", s)
	case strings.ContainsAny(s, delimiter+"\n"):
		return fmt.Errorf("value %q contains ':' or a newline", s)
	case strings.HasPrefix(s, arrayOpen):
		return fmt.Errorf("value %q would be read as an array", s)
	}
	return nil
}

func formatArray(items []string) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("empty array cannot be written")
	}
	for _, item := range items {
		if strings.TrimSpace(item) != item {
			return "", fmt.Errorf("array element %q has surrounding whitespace", item)
		}
		if strings.ContainsAny(item, arraySeparator+delimiter+"\n") {
			return "", fmt.Errorf("array element %q contains ',', ':' or a newline", item)
		}
	}
	return arrayOpen + strings.Join(items, arraySeparator+" ") + arrayClose, nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
