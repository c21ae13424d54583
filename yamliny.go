// Package yamliny implements YAMLiny, a minimal YAML-like configuration format.
//
// A YAMLiny document is a tree of "key: value" lines structured by
// indentation. Values are never typed: every scalar is a string, arrays are
// single-line lists of strings, and a key with nothing after the colon either
// opens a nested mapping or is null.
//
//	server:
//	  host: localhost # comments start at '#' after whitespace
//	  port: 8080
//	  tags: [web, prod]
//
// Loads the above into:
//
//	map[string]any{"server": map[string]any{
//		"host": "localhost",
//		"port": "8080",
//		"tags": []string{"web", "prod"},
//	}}
//
// Colons are not allowed in values and arrays cannot span lines.
package yamliny

import (
	"fmt"
	"os"
)

// Error is returned for every document that cannot be parsed.
// Line is the 1-based line number within the trimmed document.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
}

// Loads parses a YAMLiny document.
//
// The values of the returned map are nil, string, []string or
// map[string]any of the same shape. If the same key appears twice under one
// parent the later entry wins.
func Loads(text string) (map[string]any, error) {
	root, err := parse(text)
	if err != nil {
		return nil, err
	}
	return root.toMap()
}

// Load parses a YAMLiny document from bytes.
func Load(data []byte) (map[string]any, error) {
	return Loads(string(data))
}

// LoadFile reads and parses the YAMLiny file at path.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Load(data)
}

// Merge layers b on top of a. Nested mappings are merged key by key, any
// other value in b replaces the one in a. Neither input is modified.
func Merge(a, b map[string]any) map[string]any {
	return mergeMap(a, b)
}

// Marshal encodes data as YAMLiny text with sorted keys.
// It fails if a key or value cannot be read back unchanged by Loads.
func Marshal(data map[string]any) ([]byte, error) {
	s, err := MarshalString(data)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// MarshalString encodes data as a YAMLiny string.
func MarshalString(data map[string]any) (string, error) {
	return serialize(data)
}
