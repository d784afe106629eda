package store

import (
	"encoding/json"

	"github.com/spf13/cast"

	"github.com/jacentio/arbor/record"
)

// entry is the item layout of the key/value table.
type entry struct {
	PK        string `dynamodbav:"pk"`
	SK        string `dynamodbav:"sk"`
	Value     string `dynamodbav:"value"`
	TTL       int64  `dynamodbav:"ttl,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EncodeValue renders v as the string Set stores. Strings are stored as they
// are; nil, Records, sequences and maps are JSON-encoded; other scalars use
// their usual string form. Values with no string form fall back to JSON.
func EncodeValue(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case nil, *record.Record, []any, map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
