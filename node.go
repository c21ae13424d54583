package yamliny

import "fmt"

// node is one parsed line. A leaf carries a terminal value (string or
// []string) and no children; a container has a nil value and zero or more
// children. The document root is a container with no key.
type node struct {
	key      string
	indent   int
	line     int
	value    any
	children []*node
}

func (n *node) isLeaf() bool {
	return n.value != nil
}

// toMap converts the root to the output mapping. An empty document gives an
// empty, non-nil map.
func (n *node) toMap() (map[string]any, error) {
	if len(n.children) == 0 {
		return map[string]any{}, nil
	}
	return n.childrenToMap()
}

// toValue converts a node below the root. Containers without children are nil.
func (n *node) toValue() (any, error) {
	if n.isLeaf() {
		return n.value, nil
	}
	if len(n.children) == 0 {
		return nil, nil
	}
	return n.childrenToMap()
}

// childrenToMap builds a mapping from the children in order, so a repeated
// key keeps the last value.
func (n *node) childrenToMap() (map[string]any, error) {
	if err := checkConsistentIndent(n.children); err != nil {
		return nil, err
	}
	result := make(map[string]any, len(n.children))
	for _, child := range n.children {
		v, err := child.toValue()
		if err != nil {
			return nil, err
		}
		result[child.key] = v
	}
	return result, nil
}

func checkConsistentIndent(siblings []*node) error {
	if len(siblings) == 0 {
		return nil
	}
	expected := siblings[0].indent
	for _, n := range siblings[1:] {
		if n.indent != expected {
			return &Error{
				Line:    n.line,
				Message: fmt.Sprintf("bad indentation, expected %d but was %d", expected, n.indent),
			}
		}
	}
	return nil
}
