package record

import (
	"fmt"
	"math"
	"strings"
)

// Policy selects which values count as empty when pruning.
type Policy int

const (
	// Strict treats nil and the empty string as empty.
	Strict Policy = iota

	// Loose additionally treats numeric zero, NaN, false, empty containers
	// and errors with an empty message as empty.
	Loose
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Loose:
		return "loose"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses "strict" or "loose" (case-insensitive).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "loose":
		return Loose, nil
	default:
		return 0, fmt.Errorf("arbor: unknown empty policy %q", s)
	}
}

// IsEmpty reports whether v is empty under policy p.
//
// Verdicts by shape:
//
//	shape                     strict  loose
//	nil, nil *Record          empty   empty
//	""                        empty   empty
//	non-empty string          -       -
//	false                     -       empty
//	true                      -       -
//	numeric 0, NaN            -       empty
//	other numbers             -       -
//	*Record, []any, map       -       empty when len is 0
//	error                     -       empty when message is ""
//	anything else             -       -
func IsEmpty(p Policy, v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case *Record:
		if t == nil {
			return true
		}
	case string:
		return t == ""
	}
	if p != Loose {
		return false
	}
	return looseEmpty(v)
}

func looseEmpty(v any) bool {
	switch t := v.(type) {
	case bool:
		return !t
	case *Record:
		return t.Len() == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	case error:
		return t.Error() == ""
	}
	if f, ok := Number(v); ok {
		return f == 0 || math.IsNaN(f)
	}
	return false
}
