// Package validation runs declarative form schemas against submitted values.
//
// A Schema maps a field name to an ordered list of Rules. Validate checks
// every field (it never stops at the first invalid one) and keeps, per field,
// the message of the first rule that failed. Rules receive a read-only
// snapshot of the whole submission, so cross-field rules such as EqualTo and
// When can look at sibling values.
//
// Validation is pure: no I/O, no side effects beyond the returned error.
package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Data is a submitted form. A missing key is an absent field, which is
// different from a present field holding "".
type Data map[string]string

// Get returns the value of name and whether it was submitted.
func (d Data) Get(name string) (string, bool) {
	v, ok := d[name]
	return v, ok
}

func (d Data) clone() Data {
	out := make(Data, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Field is what a Rule sees: the field under test plus the full submission.
type Field struct {
	Name    string
	Value   string
	Present bool
	Data    Data
}

// Rule checks a single field. It returns the message to show and false when
// the field violates the rule.
type Rule func(f Field) (string, bool)

// Schema maps field names to their rules, in precedence order.
type Schema map[string][]Rule

// FieldErrors maps a field name to the message shown next to it.
type FieldErrors map[string]string

// Error is returned by Validate when at least one field is invalid. It is the
// only "expected" failure of a form submission; match it with errors.As.
type Error struct {
	Fields FieldErrors
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate runs s against data. It returns nil when every field passes and
// an *Error listing every failing field otherwise.
func (s Schema) Validate(data Data) error {
	snapshot := data.clone()
	errs := make(FieldErrors)

	for name, rules := range s {
		value, present := snapshot.Get(name)
		f := Field{Name: name, Value: value, Present: present, Data: snapshot}
		if msg, ok := firstFailure(rules, f); !ok {
			errs[name] = msg
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return &Error{Fields: errs}
}

// Validate is shorthand for schema.Validate(data).
func Validate(schema Schema, data Data) error {
	return schema.Validate(data)
}

func firstFailure(rules []Rule, f Field) (string, bool) {
	for _, rule := range rules {
		if msg, ok := rule(f); !ok {
			return msg, false
		}
	}
	return "", true
}
