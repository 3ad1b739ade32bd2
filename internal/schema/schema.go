// Package schema declares the closed shape of an Artwork Review SOP payload
// as an in-memory node graph. The model is purely descriptive: the validator
// interprets it, the renderers follow its property order, and the schema
// subcommand exports it as JSON Schema text. It is built once at startup and
// never mutated.
package schema

import "regexp"

// Kind identifies the primitive shape of a node.
type Kind string

const (
	Object  Kind = "object"
	Array   Kind = "array"
	String  Kind = "string"
	Number  Kind = "number"
	Integer Kind = "integer"
	Boolean Kind = "boolean"
)

// Node describes one position in the document tree. Exactly one Kind applies;
// the remaining fields are meaningful only for that Kind. A Node with a
// non-empty Ref is a reference into Schema.Defs and carries no other
// constraints of its own.
type Node struct {
	Kind  Kind
	Title string

	// Object nodes. Property order is the declared order and drives both
	// deterministic traversal and render order.
	Properties []Property
	Required   []string

	// Array nodes.
	Items       *Node
	MinItems    int
	UniqueItems bool
	Contains    []ContainsRule

	// String nodes.
	Enum      []string
	Pattern   string
	MinLength int

	// Number and Integer nodes.
	Minimum *float64
	Maximum *float64

	// Reference to a named shape in Schema.Defs.
	Ref string

	pattern *regexp.Regexp
}

// Property is a named child of an object node.
type Property struct {
	Name string
	Node *Node
}

// ContainsRule is a cross-field containment rule on an array: at least one
// element must be an object whose Field equals Value.
type ContainsRule struct {
	Field string
	Value string
}

// Schema is a root node plus the shared shapes it references by name.
type Schema struct {
	Title string
	Root  *Node
	Defs  map[string]*Node
}

// Resolve follows a reference to its definition. Non-reference nodes resolve
// to themselves. An unresolvable reference is a defect in the schema data,
// not a runtime condition, so Resolve panics on it.
func (s *Schema) Resolve(n *Node) *Node {
	if n.Ref == "" {
		return n
	}
	def, ok := s.Defs[n.Ref]
	if !ok {
		panic("schema: unresolved reference " + n.Ref)
	}
	return def
}

// Property returns the child node for a declared property name, or nil.
func (n *Node) Property(name string) *Node {
	for _, p := range n.Properties {
		if p.Name == name {
			return p.Node
		}
	}
	return nil
}

// IsRequired reports whether name is in the node's required set.
func (n *Node) IsRequired(name string) bool {
	for _, r := range n.Required {
		if r == name {
			return true
		}
	}
	return false
}

// MatchPattern reports whether s satisfies the node's pattern constraint.
// Patterns in the model are authored fully anchored.
func (n *Node) MatchPattern(s string) bool {
	if n.pattern == nil {
		n.pattern = regexp.MustCompile(n.Pattern)
	}
	return n.pattern.MatchString(s)
}

// InEnum reports whether v is a member of the node's enumeration.
func (n *Node) InEnum(v string) bool {
	for _, e := range n.Enum {
		if e == v {
			return true
		}
	}
	return false
}
