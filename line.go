package yamliny

import (
	"errors"
	"iter"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	delimiter   = ":"
	commentChar = '#'
)

var linePattern = regexp.MustCompile(`^[\p{L}\p{N}_-]+:`)

// lines yields the lines of the trimmed document with their 1-based numbers.
func lines(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, line := range strings.Split(strings.TrimSpace(text), "\n") {
			if !yield(i+1, line) {
				return
			}
		}
	}
}

// removeComment cuts the line at the first '#' if that '#' starts a
// comment, i.e. it begins the line or follows whitespace. Only the first
// '#' is considered: "a#b # c" is left as is.
func removeComment(line string) string {
	idx := strings.IndexByte(line, commentChar)
	if idx < 0 {
		return line
	}
	if idx == 0 {
		return ""
	}
	before, _ := utf8.DecodeLastRuneInString(line[:idx])
	if unicode.IsSpace(before) {
		return strings.TrimRightFunc(line[:idx], unicode.IsSpace)
	}
	return line
}

// countIndent returns the number of leading whitespace characters.
func countIndent(line string) int {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	return utf8.RuneCountInString(line[:len(line)-len(rest)])
}

func checkLineSyntax(content string) error {
	if !linePattern.MatchString(content) {
		return errors.New("expected line to start with '<key>:'")
	}
	return nil
}
