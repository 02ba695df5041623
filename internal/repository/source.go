package repository

import (
	"context"
	"strings"
)

// StructuredField is the nested object shape some source fields come in
// (lookup and formula columns expose value/text sub-fields).
type StructuredField struct {
	Value string
	Text  string
}

// FieldValue is a tagged union over the two shapes a source field value can
// take: a plain scalar or a structured object. It isolates the source's
// schema looseness at the boundary.
type FieldValue struct {
	Scalar     string
	Structured *StructuredField
}

// Plain normalizes a field value to a trimmed string. Structured values
// prefer the value sub-field, falling back to text.
func (v FieldValue) Plain() string {
	if v.Structured != nil {
		if value := strings.TrimSpace(v.Structured.Value); value != "" {
			return value
		}
		return strings.TrimSpace(v.Structured.Text)
	}
	return strings.TrimSpace(v.Scalar)
}

// SourceRecord is one raw record from the external vocabulary source.
type SourceRecord struct {
	ID     string
	Fields map[string]FieldValue
}

// Field looks up a field by name, reporting whether it was present.
func (r SourceRecord) Field(name string) (FieldValue, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

// FieldText returns the normalized text of an optional field, empty when
// the field is absent.
func (r SourceRecord) FieldText(name string) string {
	v, ok := r.Fields[name]
	if !ok {
		return ""
	}
	return v.Plain()
}

// RecordSource fetches all records of the vocabulary collection. The
// implementation owns pagination; callers always receive the complete set.
type RecordSource interface {
	FetchAll(ctx context.Context) ([]SourceRecord, error)
}
