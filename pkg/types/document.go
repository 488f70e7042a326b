// Package types defines the raw source documents, warehouse row types, and
// configuration for the salesmart ETL pipeline.
package types

import "fmt"

// Document is a loosely-typed source record. Source collections have no fixed
// shape, so every field access goes through an accessor with an explicit
// default. Natural keys are normalized to strings at the extraction boundary;
// accessors here never see native identifier types.
type Document map[string]any

// ID returns the document's natural key, already in canonical string form.
// The second return is false when the document has no _id field.
func (d Document) ID() (string, bool) {
	v, ok := d["_id"]
	if !ok || v == nil {
		return "", false
	}
	return fmt.Sprintf("%v", v), true
}

// StringOr returns the string value of key, or def when the field is absent,
// nil, or not a string.
func (d Document) StringOr(key, def string) string {
	v, ok := d[key]
	if !ok || v == nil {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

// Ref returns the string form of a reference field (user, product, order).
// References survive extraction as canonical strings, but a loose source may
// hold anything; non-string values are stringified rather than dropped.
func (d Document) Ref(key string) string {
	v, ok := d[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// FloatOr returns the numeric value of key as a float64, or def when the
// field is absent or not numeric. Source numbers arrive in whatever width the
// document store used, so all integer and float widths are accepted.
func (d Document) FloatOr(key string, def float64) float64 {
	v, ok := d[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return def
	}
}

// IntOr returns the numeric value of key as an int, or def when the field is
// absent or not numeric.
func (d Document) IntOr(key string, def int) int {
	v, ok := d[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	default:
		return def
	}
}

// StringList returns the elements of a list field in canonical string form.
// Absent or non-list fields yield an empty slice.
func (d Document) StringList(key string) []string {
	v, ok := d[key]
	if !ok || v == nil {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if e == nil {
			continue
		}
		out = append(out, fmt.Sprintf("%v", e))
	}
	return out
}

// Extraction holds one full pull of the four source collections.
type Extraction struct {
	Users      []Document
	Products   []Document
	Orders     []Document
	OrderItems []Document
}
