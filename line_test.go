package yamliny

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveComment(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"", ""},
		{"key: value", "key: value"},
		{"# whole line", ""},
		{"  # indented", ""},
		{"key: value # note", "key: value"},
		{"key: value\t\t# tab before", "key: value"},
		{"key: value#tag", "key: value#tag"},
		{"key: a#b # c", "key: a#b # c"},
		{"  key:  # nothing left", "  key:"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, removeComment(tt.line), "line %q", tt.line)
	}
}

func TestCountIndent(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"a: 1", 0},
		{"  a: 1", 2},
		{"\ta: 1", 1},
		{" \t a: 1", 3},
		{"\u00a0a: 1", 1},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, countIndent(tt.line), "line %q", tt.line)
	}
}

func TestCheckLineSyntax(t *testing.T) {
	for _, ok := range []string{"a:", "a: b", "a-b_c9: x", "ÿ:", "a:b:c"} {
		require.NoError(t, checkLineSyntax(ok), ok)
	}
	for _, bad := range []string{"a", ": b", "a b: c", "a.b: c", "[a]: b", "a :b"} {
		require.EqualError(t, checkLineSyntax(bad), "expected line to start with '<key>:'", bad)
	}
}

func TestLines(t *testing.T) {
	var got []string
	var nrs []int
	for nr, line := range lines("\n\n a\n\nb \n\n") {
		nrs = append(nrs, nr)
		got = append(got, line)
	}
	require.Equal(t, []int{1, 2, 3}, nrs)
	require.Equal(t, []string{"a", "", "b"}, got)
}
