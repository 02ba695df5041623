// Package airtable implements repository.RecordSource on top of the
// Airtable REST API.
package airtable

import (
	"context"
	"fmt"

	"github.com/mehanizm/airtable"

	"github.com/eslsoft/prepbot/internal/repository"
)

var _ repository.RecordSource = (*Source)(nil)

// Source fetches vocabulary records from one Airtable table.
type Source struct {
	table *airtable.Table
}

func NewSource(apiKey, baseID, tableName string) *Source {
	client := airtable.NewClient(apiKey)
	return &Source{table: client.GetTable(baseID, tableName)}
}

// FetchAll pages through the table until Airtable stops returning an
// offset, so callers always see the complete record set.
func (s *Source) FetchAll(ctx context.Context) ([]repository.SourceRecord, error) {
	var out []repository.SourceRecord
	offset := ""
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := s.table.GetRecords().WithOffset(offset).Do()
		if err != nil {
			return nil, fmt.Errorf("fetch records: %w", err)
		}
		for _, record := range page.Records {
			out = append(out, decodeRecord(record.ID, record.Fields))
		}

		if page.Offset == "" {
			return out, nil
		}
		offset = page.Offset
	}
}

func decodeRecord(id string, raw map[string]any) repository.SourceRecord {
	fields := make(map[string]repository.FieldValue, len(raw))
	for name, value := range raw {
		fields[name] = decodeField(value)
	}
	return repository.SourceRecord{ID: id, Fields: fields}
}

// decodeField maps a raw JSON field value onto the boundary tagged union.
// Lookup and formula columns surface as objects with value/text sub-fields;
// everything else is coerced to its scalar string form.
func decodeField(raw any) repository.FieldValue {
	switch v := raw.(type) {
	case map[string]any:
		return repository.FieldValue{Structured: &repository.StructuredField{
			Value: stringify(v["value"]),
			Text:  stringify(v["text"]),
		}}
	default:
		return repository.FieldValue{Scalar: stringify(raw)}
	}
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
