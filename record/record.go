package record

import (
	"fmt"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is an insertion-ordered mapping from string keys to values.
// The zero value is not usable; create records with New, Of or FromMap.
type Record struct {
	fields *orderedmap.OrderedMap[string, any]
}

// New creates an empty Record.
func New() *Record {
	return &Record{fields: orderedmap.New[string, any]()}
}

// Of creates a Record from alternating key/value arguments.
// It panics if the arguments are not key/value pairs with string keys.
func Of(kv ...any) *Record {
	if len(kv)%2 != 0 {
		panic("arbor: record.Of: odd number of arguments")
	}
	r := New()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("arbor: record.Of: key at position %d is %T, not string", i, kv[i]))
		}
		r.Set(key, kv[i+1])
	}
	return r
}

// FromMap converts a plain map into a Record. Keys are inserted in sorted
// order since Go maps carry none. Nested maps and slices are converted too.
func FromMap(m map[string]any) *Record {
	r := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.Set(k, fromPlain(m[k]))
	}
	return r
}

func fromPlain(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return FromMap(t)
	case []map[string]any:
		out := make([]any, len(t))
		for i, m := range t {
			out[i] = FromMap(m)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = fromPlain(item)
		}
		return out
	default:
		return v
	}
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	return r.fields.Get(key)
}

// Value returns the value stored under key, or nil.
func (r *Record) Value(key string) any {
	v, _ := r.Get(key)
	return v
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Set stores value under key. An existing key keeps its position.
func (r *Record) Set(key string, value any) {
	r.fields.Set(key, value)
}

// Delete removes key and reports whether it was present.
func (r *Record) Delete(key string) bool {
	_, ok := r.fields.Delete(key)
	return ok
}

// Len returns the number of keys.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return r.fields.Len()
}

// Keys returns the keys in order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.Len())
	r.Range(func(key string, _ any) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Range calls fn for each entry in order until fn returns false.
// fn may delete the key it is called with.
func (r *Record) Range(fn func(key string, value any) bool) {
	if r == nil {
		return
	}
	for pair := r.fields.Oldest(); pair != nil; {
		next := pair.Next()
		if !fn(pair.Key, pair.Value) {
			return
		}
		pair = next
	}
}

// ToMap converts the Record into plain maps and slices, dropping order.
func (r *Record) ToMap() map[string]any {
	if r == nil {
		return nil
	}
	out := make(map[string]any, r.Len())
	r.Range(func(key string, value any) bool {
		out[key] = toPlain(value)
		return true
	})
	return out
}

func toPlain(v any) any {
	switch t := v.(type) {
	case *Record:
		return t.ToMap()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = toPlain(item)
		}
		return out
	default:
		return v
	}
}

// String implements fmt.Stringer using the JSON form.
func (r *Record) String() string {
	b, err := r.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("record(%d keys)", r.Len())
	}
	return string(b)
}
