package schema

import (
	"bytes"
	"encoding/json"
	"sort"
)

// ExportJSON serializes the schema in JSON Schema form for external tooling.
// Output is deterministic: object properties appear in declared order and
// $defs in sorted name order.
func (s *Schema) ExportJSON() ([]byte, error) {
	root := exportNode(s.Root)
	doc := append(orderedObject{
		{"$schema", "https://json-schema.org/draft/2020-12/schema"},
		{"title", s.Title},
	}, root...)

	names := make([]string, 0, len(s.Defs))
	for name := range s.Defs {
		names = append(names, name)
	}
	sort.Strings(names)
	defs := make(orderedObject, 0, len(names))
	for _, name := range names {
		defs = append(defs, member{name, exportNode(s.Defs[name])})
	}
	doc = append(doc, member{"$defs", defs})

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type member struct {
	key   string
	value any
}

// orderedObject marshals as a JSON object with members in slice order,
// which map[string]any cannot guarantee.
type orderedObject []member

func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func exportNode(n *Node) orderedObject {
	if n.Ref != "" {
		return orderedObject{{"$ref", "#/$defs/" + n.Ref}}
	}

	out := orderedObject{}
	if n.Title != "" {
		out = append(out, member{"title", n.Title})
	}
	out = append(out, member{"type", string(n.Kind)})

	switch n.Kind {
	case Object:
		out = append(out, member{"additionalProperties", false})
		if len(n.Required) > 0 {
			out = append(out, member{"required", n.Required})
		}
		props := make(orderedObject, 0, len(n.Properties))
		for _, p := range n.Properties {
			props = append(props, member{p.Name, exportNode(p.Node)})
		}
		out = append(out, member{"properties", props})
	case Array:
		if n.MinItems > 0 {
			out = append(out, member{"minItems", n.MinItems})
		}
		if n.UniqueItems {
			out = append(out, member{"uniqueItems", true})
		}
		if n.Items != nil {
			out = append(out, member{"items", exportNode(n.Items)})
		}
		if len(n.Contains) > 0 {
			rules := make([]any, 0, len(n.Contains))
			for _, c := range n.Contains {
				rules = append(rules, orderedObject{
					{"contains", orderedObject{
						{"type", "object"},
						{"required", []string{c.Field}},
						{"properties", orderedObject{
							{c.Field, orderedObject{{"const", c.Value}}},
						}},
					}},
				})
			}
			out = append(out, member{"allOf", rules})
		}
	case String:
		if len(n.Enum) > 0 {
			out = append(out, member{"enum", n.Enum})
		}
		if n.Pattern != "" {
			out = append(out, member{"pattern", n.Pattern})
		}
		if n.MinLength > 0 {
			out = append(out, member{"minLength", n.MinLength})
		}
	case Number, Integer:
		if n.Minimum != nil {
			out = append(out, member{"minimum", *n.Minimum})
		}
		if n.Maximum != nil {
			out = append(out, member{"maximum", *n.Maximum})
		}
	}
	return out
}
