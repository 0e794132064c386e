package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RawRecord is a catalog row exactly as the upstream data source returned it.
//
// Nothing about its shape is guaranteed: a field may be missing, null, a
// scalar, an already-decoded array/object, or a JSON document stored as text
// (D1 BLOB columns arrive that way). The accessors below never fail; callers
// get zero values when a field is absent or has the wrong type.
type RawRecord map[string]any

// Has reports whether key is present with a non-null value.
func (r RawRecord) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// String returns the field as text. Numbers are formatted, byte slices are
// converted, everything else yields "".
func (r RawRecord) String(key string) string {
	return scalarText(r[key])
}

// FirstString returns the first non-blank string among keys, in order.
func (r RawRecord) FirstString(keys ...string) string {
	for _, k := range keys {
		if s := strings.TrimSpace(r.String(k)); s != "" {
			return r.String(k)
		}
	}
	return ""
}

// Int returns the field as an integer when it holds a whole number, either
// natively or as decimal text.
func (r RawRecord) Int(key string) (int64, bool) {
	return toInt(r[key])
}

// ID returns the record's positive numeric identifier from the first key
// that carries one. Zero is treated as absent.
func (r RawRecord) ID(keys ...string) (int64, bool) {
	if len(keys) == 0 {
		keys = []string{"id"}
	}
	for _, k := range keys {
		if n, ok := r.Int(k); ok && n > 0 {
			return n, true
		}
	}
	return 0, false
}

// Float returns the field as a float64.
func (r RawRecord) Float(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

// Bool treats true, 1 and "true"/"1" as true. D1 stores booleans as INTEGER.
func (r RawRecord) Bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "true" || s == "1"
	default:
		n, ok := toInt(v)
		return ok && n == 1
	}
}

// Text formats a scalar value the way String does for a field.
func Text(v any) string {
	return scalarText(v)
}

func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

func toInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int64:
		return t, true
	case int32:
		return int64(t), true
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return int64(t), true
	case json.Number:
		n, err := t.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return n, err == nil
	case []byte:
		n, err := strconv.ParseInt(strings.TrimSpace(string(t)), 10, 64)
		return n, err == nil
	}
	return 0, false
}
