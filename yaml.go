package yamliny

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML converts a YAML document into the shape Loads produces. Scalars
// keep their literal text, so "port: 8080" gives the string "8080", and
// null scalars become nil. Sequences may only hold non-null scalars.
func FromYAML(data []byte) (map[string]any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return map[string]any{}, nil
	}
	v, err := fromYAMLNode(&doc, "", map[*yaml.Node]bool{})
	if err != nil {
		return nil, err
	}
	switch m := v.(type) {
	case map[string]any:
		return m, nil
	case nil:
		return map[string]any{}, nil
	default:
		return nil, errors.New("yaml: document must be a mapping")
	}
}

// fromYAMLNode converts n. active holds the mappings currently being
// converted, so an alias pointing back into one of them is an error.
func fromYAMLNode(n *yaml.Node, path string, active map[*yaml.Node]bool) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromYAMLNode(n.Content[0], path, active)
	case yaml.AliasNode:
		if active[n.Alias] {
			return nil, fmt.Errorf("yaml: line %d: recursive alias", n.Line)
		}
		return fromYAMLNode(n.Alias, path, active)
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	case yaml.SequenceNode:
		items := make([]string, len(n.Content))
		for i, item := range n.Content {
			if item.Kind == yaml.AliasNode {
				item = item.Alias
			}
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("yaml: line %d: %s[%d]: sequences may only hold scalars", item.Line, path, i)
			}
			if item.ShortTag() == "!!null" {
				return nil, fmt.Errorf("yaml: line %d: %s[%d]: sequences may not hold null", item.Line, path, i)
			}
			items[i] = item.Value
		}
		return items, nil
	case yaml.MappingNode:
		active[n] = true
		defer delete(active, n)
		result := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valueNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("yaml: line %d: mapping keys must be scalars", keyNode.Line)
			}
			if keyNode.Tag == "!!merge" {
				return nil, fmt.Errorf("yaml: line %d: merge keys are not supported", keyNode.Line)
			}
			v, err := fromYAMLNode(valueNode, joinPath(path, keyNode.Value), active)
			if err != nil {
				return nil, err
			}
			result[keyNode.Value] = v
		}
		return result, nil
	default:
		return nil, fmt.Errorf("yaml: line %d: unsupported node kind %v", n.Line, n.Kind)
	}
}
