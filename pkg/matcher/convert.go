package matcher

import (
	"reflect"

	"digital.vasic.matchers/pkg/equality"
)

// Elements normalizes a container value into a flat element
// sequence. Slices and arrays yield their elements in order;
// maps yield key-value entries (iteration order is not relied
// on for correctness, only for message rendering). Non-container
// values report ok=false.
func Elements(actual any) (elements []any, ok bool) {
	if actual == nil {
		return nil, false
	}

	rv := reflect.ValueOf(actual)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, rv.Index(i).Interface())
		}
		return out, true
	case reflect.Map:
		out := make([]any, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, equality.Entry{
				Key:   iter.Key().Interface(),
				Value: iter.Value().Interface(),
			})
		}
		return out, true
	}

	return nil, false
}

// toFloat64 converts a numeric value to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}
