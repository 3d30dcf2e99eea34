package render

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"digital.vasic.matchers/pkg/equality"
)

// Prettifier formats a single value for embedding in a failure
// message (quoting strings, bracketing collections).
type Prettifier func(v any) string

// Literal marks a string that must be embedded in a message
// verbatim, bypassing the prettifier's quoting.
type Literal string

// DefaultPrettifier quotes strings, renders slices and arrays as
// "[a, b]", maps as "{k -> v}", and entries as "k -> v". Other
// values fall back to their fmt representation.
func DefaultPrettifier(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case Literal:
		return string(val)
	case string:
		return strconv.Quote(val)
	case equality.Entry:
		return DefaultPrettifier(val.Key) + " -> " +
			DefaultPrettifier(val.Value)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts = append(
				parts,
				DefaultPrettifier(rv.Index(i).Interface()),
			)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		parts := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			parts = append(
				parts,
				DefaultPrettifier(iter.Key().Interface())+
					" -> "+
					DefaultPrettifier(iter.Value().Interface()),
			)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}

	return fmt.Sprintf("%v", v)
}
