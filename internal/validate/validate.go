// Package validate checks a loosely-typed payload tree against the schema
// model. It is a tree-walking interpreter: new sections or fields need only
// schema data changes, never validator changes. All violations are collected
// in a single pass and reported together.
package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"

	"artreview/internal/schema"
)

// Code classifies a structural violation.
type Code string

const (
	UnknownField           Code = "unknown_field"
	MissingField           Code = "missing_field"
	TypeMismatch           Code = "type_mismatch"
	EnumViolation          Code = "enum_violation"
	PatternViolation       Code = "pattern_violation"
	RangeViolation         Code = "range_violation"
	CardinalityViolation   Code = "cardinality_violation"
	DuplicateItem          Code = "duplicate_item"
	MissingRequiredVariant Code = "missing_required_variant"
)

// Violation is one deviation from the schema at one path.
type Violation struct {
	Path    []string
	Code    Code
	Message string
}

// PathString joins the path for display; an empty path is the payload root.
func (v Violation) PathString() string {
	if len(v.Path) == 0 {
		return "<root>"
	}
	return strings.Join(v.Path, "/")
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.PathString(), v.Message)
}

// Violations is the complete, path-ordered report for one payload. It
// implements error so the CLI boundary can classify outcomes, but the
// validator itself never aborts on it.
type Violations []Violation

func (vs Violations) Error() string {
	msgs := make([]string, len(vs))
	for i, v := range vs {
		msgs[i] = v.String()
	}
	return fmt.Sprintf("invalid payload:\n%s", strings.Join(msgs, "\n"))
}

// Validator interprets a schema model over payload trees.
type Validator struct {
	schema *schema.Schema
}

// New returns a validator for the given schema.
func New(s *schema.Schema) *Validator {
	return &Validator{schema: s}
}

// Validate walks the payload against the schema root and returns every
// violation, sorted by path. A nil result means the payload is valid. The
// payload is never mutated.
func (v *Validator) Validate(payload any) Violations {
	var out Violations
	v.walk(v.schema.Root, payload, nil, &out)
	sortByPath(out)
	if len(out) == 0 {
		return nil
	}
	return out
}

func (v *Validator) walk(n *schema.Node, value any, path []string, out *Violations) {
	n = v.schema.Resolve(n)
	switch n.Kind {
	case schema.Object:
		v.walkObject(n, value, path, out)
	case schema.Array:
		v.walkArray(n, value, path, out)
	case schema.String:
		v.walkString(n, value, path, out)
	case schema.Number, schema.Integer:
		v.walkNumber(n, value, path, out)
	case schema.Boolean:
		if _, ok := value.(bool); !ok {
			report(out, path, TypeMismatch, "%s is not a boolean", describe(value))
		}
	}
}

func (v *Validator) walkObject(n *schema.Node, value any, path []string, out *Violations) {
	obj, ok := value.(map[string]any)
	if !ok {
		report(out, path, TypeMismatch, "%s is not an object", describe(value))
		return
	}

	// Closed shape: anything outside the declared property set is rejected.
	// Unknown keys are visited in sorted order so the report is stable.
	var unknown []string
	for key := range obj {
		if n.Property(key) == nil {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		report(out, child(path, key), UnknownField, "unexpected field %q", key)
	}

	for _, req := range n.Required {
		if _, present := obj[req]; !present {
			report(out, child(path, req), MissingField, "required field %q is missing", req)
		}
	}

	// Declared order, not input key order, drives traversal.
	for _, p := range n.Properties {
		if val, present := obj[p.Name]; present {
			v.walk(p.Node, val, child(path, p.Name), out)
		}
	}
}

func (v *Validator) walkArray(n *schema.Node, value any, path []string, out *Violations) {
	arr, ok := value.([]any)
	if !ok {
		report(out, path, TypeMismatch, "%s is not an array", describe(value))
		return
	}

	if len(arr) < n.MinItems {
		report(out, path, CardinalityViolation, "%d item(s) present, at least %d required", len(arr), n.MinItems)
	}

	if n.UniqueItems {
		// Deep structural equality; the later of each equal pair is flagged.
		for i := 1; i < len(arr); i++ {
			for j := 0; j < i; j++ {
				if cmp.Equal(arr[j], arr[i]) {
					report(out, child(path, strconv.Itoa(i)), DuplicateItem, "duplicate of item %d", j)
					break
				}
			}
		}
	}

	if n.Items != nil {
		for i, item := range arr {
			v.walk(n.Items, item, child(path, strconv.Itoa(i)), out)
		}
	}

	// Cross-field containment rules run after the per-row checks.
	for _, rule := range n.Contains {
		if !containsVariant(arr, rule) {
			report(out, path, MissingRequiredVariant, "no item with %s == %q", rule.Field, rule.Value)
		}
	}
}

func containsVariant(arr []any, rule schema.ContainsRule) bool {
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if s, ok := obj[rule.Field].(string); ok && s == rule.Value {
			return true
		}
	}
	return false
}

func (v *Validator) walkString(n *schema.Node, value any, path []string, out *Violations) {
	s, ok := value.(string)
	if !ok {
		report(out, path, TypeMismatch, "%s is not a string", describe(value))
		return
	}
	if len(n.Enum) > 0 && !n.InEnum(s) {
		report(out, path, EnumViolation, "%q is not one of %s", s, strings.Join(n.Enum, ", "))
		return
	}
	if n.Pattern != "" && !n.MatchPattern(s) {
		report(out, path, PatternViolation, "%q does not match %s", s, n.Pattern)
	}
	if n.MinLength > 0 && len(s) < n.MinLength {
		report(out, path, RangeViolation, "string shorter than %d character(s)", n.MinLength)
	}
}

func (v *Validator) walkNumber(n *schema.Node, value any, path []string, out *Violations) {
	f, ok := asFloat(value)
	if !ok {
		report(out, path, TypeMismatch, "%s is not a number", describe(value))
		return
	}
	if n.Kind == schema.Integer && f != math.Trunc(f) {
		report(out, path, TypeMismatch, "%v is not an integer", value)
		return
	}
	if n.Minimum != nil && f < *n.Minimum {
		report(out, path, RangeViolation, "%v is below the minimum %v", value, *n.Minimum)
	}
	if n.Maximum != nil && f > *n.Maximum {
		report(out, path, RangeViolation, "%v is above the maximum %v", value, *n.Maximum)
	}
}

func asFloat(value any) (float64, bool) {
	switch x := value.(type) {
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case float64:
		return x, true
	case int:
		return float64(x), true
	}
	return 0, false
}

func describe(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number, float64, int:
		return "a number"
	}
	return fmt.Sprintf("%T", value)
}

func report(out *Violations, path []string, code Code, format string, args ...any) {
	*out = append(*out, Violation{Path: path, Code: code, Message: fmt.Sprintf(format, args...)})
}

// child extends a path without sharing the parent's backing array, so
// sibling branches cannot clobber each other's recorded paths.
func child(path []string, seg string) []string {
	next := make([]string, len(path)+1)
	copy(next, path)
	next[len(path)] = seg
	return next
}

// sortByPath orders violations lexicographically over path segments, with
// numeric segments (array indices) compared numerically so item 10 sorts
// after item 9. The sort is stable, so violations at the same path keep
// traversal order.
func sortByPath(vs Violations) {
	sort.SliceStable(vs, func(i, j int) bool {
		return comparePaths(vs[i].Path, vs[j].Path) < 0
	})
}

func comparePaths(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareSegments(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

func compareSegments(a, b string) int {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai - bi
	}
	return strings.Compare(a, b)
}
