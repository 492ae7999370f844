package discovery

import "strings"

// Node is one node of a declared field tree.
type Node interface {
	// Tag is the component or element name; empty for text and anonymous nodes.
	Tag() string
	// Props are the declared properties of the node.
	Props() Props
	// Children are the child nodes in document order.
	Children() []Node
}

// Props holds the declared properties of a field node.
type Props map[string]any

// Name returns the "name" property.
func (p Props) Name() string {
	return p.str("name")
}

// Validation returns the rule string from the "validation" property.
func (p Props) Validation() string {
	return p.str("validation")
}

// Label returns the "label" property.
func (p Props) Label() string {
	return p.str("label")
}

// Value returns the "value" property, falling back to "initial".
func (p Props) Value() any {
	if v, ok := p["value"]; ok {
		return v
	}
	return p["initial"]
}

func (p Props) str(key string) string {
	s, _ := p[key].(string)
	return strings.TrimSpace(s)
}

// Collector gathers the props of every node whose tag matches the field tag.
type Collector struct {
	tag string
}

// NewCollector creates a collector for the given field tag name.
func NewCollector(fieldTag string) *Collector {
	return &Collector{tag: fieldTag}
}

// Collect walks the tree depth first and returns field props in document order.
// The root itself is the form container and is never collected. Matching nodes
// are collected and still searched, non-matching nodes are transparent.
func (c *Collector) Collect(root Node) []Props {
	if root == nil {
		return nil
	}
	var fields []Props
	for _, child := range root.Children() {
		fields = c.collect(child, fields)
	}
	return fields
}

func (c *Collector) collect(n Node, fields []Props) []Props {
	if n == nil {
		return fields
	}
	if c.tag != "" && n.Tag() == c.tag {
		fields = append(fields, n.Props())
	}
	for _, child := range n.Children() {
		fields = c.collect(child, fields)
	}
	return fields
}
