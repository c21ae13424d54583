package yamliny

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	base, err := Loads("server:\n  host: localhost\n  port: 8080\n  tags: [web]\nname: base\nlogging:\n  level: info")
	require.NoError(t, err)
	overlay, err := Loads("server:\n  port: 9090\n  tags: [web, prod]\nlogging: off\nextra:")
	require.NoError(t, err)

	merged := Merge(base, overlay)
	require.Equal(t, map[string]any{
		"server": map[string]any{
			"host": "localhost",
			"port": "9090",
			"tags": []string{"web", "prod"},
		},
		"name":    "base",
		"logging": "off",
		"extra":   nil,
	}, merged)
}

func TestMergeAssociativity(t *testing.T) {
	a := map[string]any{
		"x": map[string]any{"1": "a"},
		"y": map[string]any{"a": "a"},
	}
	b := map[string]any{
		"x": map[string]any{"2": "b"},
		"z": map[string]any{"b": "b"},
	}
	c := map[string]any{
		"x": map[string]any{"1": "c", "3": "c"},
		"y": "c",
	}

	require.Equal(t, Merge(Merge(a, b), c), Merge(a, Merge(b, c)))
}

func TestMergeDoesNotAlias(t *testing.T) {
	a := map[string]any{"m": map[string]any{"k": "a"}, "l": []string{"x"}}
	b := map[string]any{"n": map[string]any{"k": "b"}}

	merged := Merge(a, b)
	merged["m"].(map[string]any)["k"] = "changed"
	merged["n"].(map[string]any)["k"] = "changed"
	merged["l"].([]string)[0] = "changed"

	require.Equal(t, "a", a["m"].(map[string]any)["k"])
	require.Equal(t, "b", b["n"].(map[string]any)["k"])
	require.Equal(t, []string{"x"}, a["l"])
}

func TestMergeNil(t *testing.T) {
	require.Equal(t, map[string]any{}, Merge(nil, nil))
	require.Equal(t, map[string]any{"a": "1"}, Merge(nil, map[string]any{"a": "1"}))
}
