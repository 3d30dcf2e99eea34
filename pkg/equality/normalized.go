package equality

import "strings"

// Normalizer rewrites a value into its canonical form before
// comparison. It must be total and must not mutate its input.
type Normalizer func(v any) any

// Normalized wraps an inner equality with a normalizer that is
// applied to both operands before the inner comparison runs.
func Normalized(inner Equality, normalize Normalizer) Equality {
	if inner == nil {
		inner = Default
	}
	return normalized{inner: inner, normalize: normalize}
}

type normalized struct {
	inner     Equality
	normalize Normalizer
}

func (n normalized) AreEqual(actual, expected any) bool {
	return n.inner.AreEqual(
		n.normalize(actual),
		n.normalize(expected),
	)
}

// CaseInsensitive returns an equality that lower-cases string
// operands before structural comparison. Strings nested inside
// entries and slices are normalized as well.
func CaseInsensitive() Equality {
	return Normalized(Default, LowerCased)
}

// Trimmed returns an equality that trims surrounding whitespace
// from string operands before structural comparison.
func Trimmed() Equality {
	return Normalized(Default, func(v any) any {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
		return v
	})
}

// LowerCased is a Normalizer that lower-cases strings, descending
// into entries and []any element-wise.
func LowerCased(v any) any {
	switch val := v.(type) {
	case string:
		return strings.ToLower(val)
	case Entry:
		return Entry{
			Key:   LowerCased(val.Key),
			Value: LowerCased(val.Value),
		}
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = LowerCased(item)
		}
		return out
	}
	return v
}
