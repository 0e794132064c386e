// Package fields decodes the polymorphic fields of upstream catalog records.
//
// The same logical field (a tracklist, a picture list, a nested record list)
// can arrive as null, as JSON stored in a text/BLOB column, as an already
// decoded array, or as a bare scalar, depending on which endpoint and which
// era of data produced the record. Every value is first classified into one
// of a few variants and each normalizer then switches over the variant.
//
// Decoding never fails: malformed input yields an empty container so the
// page that renders it still renders.
package fields

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"americanclave/pkg/models"
)

// maxDepth bounds re-dispatch of JSON text that decodes to more JSON text
// (double-encoded BLOBs).
const maxDepth = 3

// Kind is the variant of a raw field value.
type Kind int

const (
	KindEmpty    Kind = iota // absent, null, blank text
	KindJSONText             // text that may hold a JSON document
	KindArray                // already decoded array
	KindObject               // already decoded object
	KindScalar               // number, bool or anything else
)

// Value is a classified raw field.
type Value struct {
	Kind   Kind
	Text   string
	Items  []any
	Object models.RawRecord
	Scalar any
}

// Classify sorts a raw value into its variant.
func Classify(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Value{Kind: KindEmpty}
	case string:
		if strings.TrimSpace(v) == "" {
			return Value{Kind: KindEmpty}
		}
		return Value{Kind: KindJSONText, Text: v}
	case []byte:
		if len(bytes.TrimSpace(v)) == 0 {
			return Value{Kind: KindEmpty}
		}
		return Value{Kind: KindJSONText, Text: string(v)}
	case []any:
		return Value{Kind: KindArray, Items: v}
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return Value{Kind: KindArray, Items: items}
	case []map[string]any:
		items := make([]any, len(v))
		for i, m := range v {
			items[i] = m
		}
		return Value{Kind: KindArray, Items: items}
	case []models.RawRecord:
		items := make([]any, len(v))
		for i, m := range v {
			items[i] = m
		}
		return Value{Kind: KindArray, Items: items}
	case map[string]any:
		return Value{Kind: KindObject, Object: models.RawRecord(v)}
	case models.RawRecord:
		return Value{Kind: KindObject, Object: v}
	default:
		return Value{Kind: KindScalar, Scalar: v}
	}
}

// decodeJSON parses text keeping numbers as json.Number so identifiers
// survive untouched. Trailing data after the first value is an error.
func decodeJSON(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errTrailingData
	}
	return out, nil
}

var errTrailingData = errors.New("trailing data after JSON value")

// NormalizeRecords decodes a nested list of records, such as the albums a
// player record carries. Non-object elements are skipped.
func NormalizeRecords(raw any) []models.RawRecord {
	return records(raw, 0)
}

func records(raw any, depth int) []models.RawRecord {
	out := []models.RawRecord{}
	v := Classify(raw)
	switch v.Kind {
	case KindJSONText:
		if depth >= maxDepth {
			return out
		}
		parsed, err := decodeJSON(v.Text)
		if err != nil {
			return out
		}
		return records(parsed, depth+1)
	case KindArray:
		for _, item := range v.Items {
			if el := Classify(item); el.Kind == KindObject {
				out = append(out, el.Object)
			}
		}
	case KindObject:
		out = append(out, v.Object)
	}
	return out
}
