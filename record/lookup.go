package record

import "github.com/samber/lo"

// DefaultRepeatCount is the conventional count for Repeat.
const DefaultRepeatCount = 5

// LookupLabel returns the labelKey value of the last record in list whose
// valueKey value equals value. When nothing matches, value itself is
// returned.
func LookupLabel(list []*Record, valueKey, labelKey string, value any) any {
	label := value
	for _, r := range list {
		if v, ok := r.Get(valueKey); ok && SameValue(v, value) {
			label = r.Value(labelKey)
		}
	}
	return label
}

// Repeat returns a sequence holding v n times. Every slot refers to the
// same value.
func Repeat(v any, n int) []any {
	if n < 0 {
		n = 0
	}
	return lo.Times(n, func(int) any { return v })
}
