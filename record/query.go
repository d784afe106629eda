package record

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

// EncodeQuery renders r as a query string ("a=1&b=x%20y") in key order.
// Values are percent-encoded with spaces as %20. Containers are encoded as
// JSON and nil as an empty value.
func EncodeQuery(r *Record) string {
	if r == nil {
		return ""
	}
	parts := make([]string, 0, r.Len())
	r.Range(func(key string, value any) bool {
		parts = append(parts, key+"="+escapeComponent(queryValue(value)))
		return true
	})
	return strings.Join(parts, "&")
}

func queryValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case *Record, []any, map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ParseQuery returns the query parameters of rawURL in order of appearance.
// Hash-routed URLs such as "https://host/#/page?id=1" carry their query in
// the fragment; when the fragment has one it is used instead of the query
// before the '#'. Repeated keys keep the last value.
func ParseQuery(rawURL string) *Record {
	params := New()
	base, fragment, _ := strings.Cut(rawURL, "#")
	_, query, found := strings.Cut(fragment, "?")
	if !found {
		if _, query, found = strings.Cut(base, "?"); !found {
			return params
		}
	}
	for _, part := range strings.Split(query, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		if decoded, err := url.PathUnescape(value); err == nil {
			value = decoded
		}
		params.Set(key, value)
	}
	return params
}

// QueryParam returns a single query parameter of rawURL, or "".
func QueryParam(rawURL, key string) string {
	v, _ := ParseQuery(rawURL).Get(key)
	s, _ := v.(string)
	return s
}
