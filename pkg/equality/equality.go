// Package equality provides pluggable equality predicates used
// by every comparison a matcher performs. The default is
// structural equality; callers may substitute their own
// implementation per evaluation.
package equality

import (
	"bytes"
	"reflect"
)

// Equality decides whether an actual value equals an expected
// candidate. Implementations must be total: they return false
// rather than panic on values they do not understand.
type Equality interface {
	// AreEqual reports whether actual and expected are equal.
	AreEqual(actual, expected any) bool
}

// Func adapts an ordinary function to the Equality interface.
type Func func(actual, expected any) bool

// AreEqual calls the wrapped function.
func (f Func) AreEqual(actual, expected any) bool {
	return f(actual, expected)
}

// structural is the default deep structural equality.
type structural struct{}

// Default is the structural equality used when no override is
// supplied. Byte slices are compared by content; everything
// else goes through reflect.DeepEqual.
var Default Equality = structural{}

func (structural) AreEqual(actual, expected any) bool {
	if ab, ok := actual.([]byte); ok {
		eb, ok := expected.([]byte)
		if !ok {
			return false
		}
		return bytes.Equal(ab, eb)
	}
	return reflect.DeepEqual(actual, expected)
}

// Entry is a key-value pair. Map containers are matched as
// sequences of entries, with key and value each compared under
// the active equality.
type Entry struct {
	Key   any
	Value any
}

// EntryEquality compares Entry values pairwise: keys under Key,
// values under Value. Non-Entry operands never compare equal.
type EntryEquality struct {
	Key   Equality
	Value Equality
}

// AreEqual reports whether both operands are entries whose keys
// and values are equal under the component equalities.
func (e EntryEquality) AreEqual(actual, expected any) bool {
	ae, ok := actual.(Entry)
	if !ok {
		return false
	}
	ee, ok := expected.(Entry)
	if !ok {
		return false
	}

	keyEq := e.Key
	if keyEq == nil {
		keyEq = Default
	}
	valEq := e.Value
	if valEq == nil {
		valEq = Default
	}

	return keyEq.AreEqual(ae.Key, ee.Key) &&
		valEq.AreEqual(ae.Value, ee.Value)
}
