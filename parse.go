package yamliny

import (
	"fmt"
	"strings"
)

// parse builds the node tree for text in a single pass over its lines.
//
// open is the stack of containers that can still receive children; its
// bottom is always the root. For each line the stack is popped back to the
// nearest container indented strictly less than the line.
func parse(text string) (*node, error) {
	root := &node{}
	open := []*node{root}

	for lineNr, raw := range lines(text) {
		err := atLine(lineNr, func() error {
			line := removeComment(raw)
			content := strings.TrimSpace(line)
			if content == "" {
				return nil
			}
			if err := checkLineSyntax(content); err != nil {
				return err
			}

			indent := countIndent(line)
			for len(open) > 1 && open[len(open)-1].indent >= indent {
				open = open[:len(open)-1]
			}

			key, rest, err := splitKeyValue(content)
			if err != nil {
				return err
			}

			n := &node{key: key, indent: indent, line: lineNr}
			if rest != "" {
				if n.value, err = parseTerminalValue(rest); err != nil {
					return err
				}
			}

			parent := open[len(open)-1]
			parent.children = append(parent.children, n)
			if !n.isLeaf() {
				open = append(open, n)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return root, nil
}

// atLine runs fn and prefixes any error it returns with lineNr.
func atLine(lineNr int, fn func() error) error {
	if err := fn(); err != nil {
		return &Error{Line: lineNr, Message: err.Error()}
	}
	return nil
}

// splitKeyValue splits content on the delimiter, which must occur exactly once.
func splitKeyValue(content string) (key, rest string, err error) {
	parts := strings.Split(content, delimiter)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("expected exactly one '%s' but found %d", delimiter, len(parts)-1)
	}
	return parts[0], strings.TrimSpace(parts[1]), nil
}
