package yamliny

import (
	"errors"
	"strings"
)

const (
	arrayOpen      = "["
	arrayClose     = "]"
	arraySeparator = ","
)

// parseTerminalValue parses the text after the delimiter. Array literals
// become []string, anything else is returned as a trimmed string.
func parseTerminalValue(raw string) (any, error) {
	stripped := strings.TrimSpace(raw)
	if strings.HasPrefix(stripped, arrayOpen) {
		return parseArray(stripped)
	}
	return stripped, nil
}

// parseArray splits "[a, b]" into its trimmed elements. Empty elements are
// kept, so "[]" is a one-element list holding "".
func parseArray(stripped string) ([]string, error) {
	if !strings.HasSuffix(stripped, arrayClose) {
		return nil, errors.New("array must start and end on same line")
	}
	items := strings.Split(stripped[1:len(stripped)-1], arraySeparator)
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items, nil
}
