package record

import (
	"bytes"
	"fmt"

	"github.com/buger/jsonparser"
)

// Parse decodes a JSON document keeping object keys in document order.
// Objects become *Record, arrays []any, integral numbers int64, other
// numbers float64, and null becomes nil.
func Parse(data []byte) (any, error) {
	value, dataType, end, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("arbor: parse json: %w", err)
	}
	if rest := bytes.TrimLeft(data[end:], " \t\r\n"); len(rest) > 0 {
		return nil, fmt.Errorf("arbor: parse json: unexpected data after value at offset %d", len(data)-len(rest))
	}
	return decodeValue(value, dataType)
}

// ParseRecord decodes a JSON object.
func ParseRecord(data []byte) (*Record, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	r, ok := v.(*Record)
	if !ok {
		return nil, &KindError{Op: "parse", Arg: "document", Want: "a JSON object", Got: v}
	}
	return r, nil
}

// ParseRecords decodes a JSON array of objects, the usual flat record set.
func ParseRecords(data []byte) ([]*Record, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		return nil, &KindError{Op: "parse", Arg: "document", Want: "a JSON array", Got: v}
	}
	out := make([]*Record, 0, len(items))
	for i, item := range items {
		r, ok := item.(*Record)
		if !ok {
			return nil, &KindError{Op: "parse", Arg: fmt.Sprintf("element %d", i), Want: "a JSON object", Got: item}
		}
		out = append(out, r)
	}
	return out, nil
}

// MarshalJSON encodes the Record as a JSON object in key order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil || r.fields == nil {
		return []byte("null"), nil
	}
	return r.fields.MarshalJSON()
}

// UnmarshalJSON replaces the Record's contents with a decoded JSON object.
func (r *Record) UnmarshalJSON(data []byte) error {
	parsed, err := ParseRecord(data)
	if err != nil {
		return err
	}
	r.fields = parsed.fields
	return nil
}

func decodeValue(value []byte, dataType jsonparser.ValueType) (any, error) {
	switch dataType {
	case jsonparser.Object:
		return decodeObject(value)
	case jsonparser.Array:
		return decodeArray(value)
	case jsonparser.String:
		return jsonparser.ParseString(value)
	case jsonparser.Number:
		return decodeNumber(value)
	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(value)
	case jsonparser.Null:
		return nil, nil
	default:
		return nil, fmt.Errorf("arbor: parse json: unexpected token %q", value)
	}
}

func decodeObject(value []byte) (*Record, error) {
	r := New()
	err := jsonparser.ObjectEach(value, func(key, raw []byte, dataType jsonparser.ValueType, _ int) error {
		decoded, err := decodeValue(raw, dataType)
		if err != nil {
			return err
		}
		r.Set(string(key), decoded)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("arbor: parse json: %w", err)
	}
	return r, nil
}

func decodeArray(value []byte) ([]any, error) {
	out := []any{}
	var decodeErr error
	_, err := jsonparser.ArrayEach(value, func(raw []byte, dataType jsonparser.ValueType, _ int, err error) {
		if decodeErr != nil {
			return
		}
		if err != nil {
			decodeErr = err
			return
		}
		decoded, err := decodeValue(raw, dataType)
		if err != nil {
			decodeErr = err
			return
		}
		out = append(out, decoded)
	})
	if err == nil {
		err = decodeErr
	}
	if err != nil {
		return nil, fmt.Errorf("arbor: parse json: %w", err)
	}
	return out, nil
}

func decodeNumber(value []byte) (any, error) {
	if !bytes.ContainsAny(value, ".eE") {
		if n, err := jsonparser.ParseInt(value); err == nil {
			return n, nil
		}
	}
	return jsonparser.ParseFloat(value)
}
