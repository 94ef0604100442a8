package parallel

import (
	"errors"
	"strings"
)

// ErrEmptyInput is returned when a combine without an identity element is
// asked to reduce zero values.
var ErrEmptyInput = errors.New("empty input and no identity element")

// Monoid is an associative combine over R with an optional identity.
// Combine must be associative; it need not be commutative, and Reduce only
// ever calls it with the left operand coming from earlier input.
//
// A Monoid built with NewSemigroup has no identity and cannot reduce an
// empty input.
type Monoid[R any] struct {
	combine     func(a, b R) R
	identity    R
	hasIdentity bool

	// foldAll, when set, folds a non-empty slice in one pass. It must give
	// the same result as combining left to right.
	foldAll func(values []R) R
}

// NewMonoid returns a Monoid with the given combine and identity element.
func NewMonoid[R any](combine func(a, b R) R, identity R) Monoid[R] {
	return Monoid[R]{combine: combine, identity: identity, hasIdentity: true}
}

// NewSemigroup returns a Monoid without an identity element.
func NewSemigroup[R any](combine func(a, b R) R) Monoid[R] {
	return Monoid[R]{combine: combine}
}

// Combine merges a and b, a coming first in input order.
func (m Monoid[R]) Combine(a, b R) R {
	return m.combine(a, b)
}

// Identity returns the identity element and whether there is one.
func (m Monoid[R]) Identity() (R, bool) {
	return m.identity, m.hasIdentity
}

// Fold combines values left to right. An empty slice yields the identity,
// or ErrEmptyInput when there is none.
func (m Monoid[R]) Fold(values []R) (R, error) {
	if len(values) == 0 {
		if id, ok := m.Identity(); ok {
			return id, nil
		}
		var zero R
		return zero, ErrEmptyInput
	}

	if m.foldAll != nil {
		return m.foldAll(values), nil
	}

	acc := values[0]
	for _, v := range values[1:] {
		acc = m.combine(acc, v)
	}
	return acc, nil
}

// SliceConcat concatenates slices in order. The identity is an empty,
// non-nil slice. Combine never writes into its operands; Fold allocates the
// result once and copies every part into it.
func SliceConcat[T any]() Monoid[[]T] {
	m := NewMonoid(func(a, b []T) []T {
		return append(a[:len(a):len(a)], b...)
	}, []T{})
	m.foldAll = concatAll[T]
	return m
}

func concatAll[T any](parts [][]T) []T {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]T, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// StringConcat concatenates strings in order.
func StringConcat() Monoid[string] {
	m := NewMonoid(func(a, b string) string { return a + b }, "")
	m.foldAll = func(parts []string) string { return strings.Join(parts, "") }
	return m
}

// BoolAnd is logical conjunction with identity true.
func BoolAnd() Monoid[bool] {
	return NewMonoid(func(a, b bool) bool { return a && b }, true)
}

// BoolOr is logical disjunction with identity false.
func BoolOr() Monoid[bool] {
	return NewMonoid(func(a, b bool) bool { return a || b }, false)
}

// Number is the set of types Sum can add.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds numbers with identity zero.
func Sum[N Number]() Monoid[N] {
	return NewMonoid(func(a, b N) N { return a + b }, 0)
}

// First keeps whichever of two values pick selects. It has no identity.
// With pick choosing a on ties, folding keeps the left-most winner.
func First[T any](pick func(a, b T) T) Monoid[T] {
	return NewSemigroup(pick)
}
