// Package xiter provides adapters for Go 1.23+ iter.Seq, including MapGenerator.
//
// This file contains adapters for generator functions, i.e. functions returning an iter.Seq.
package xiter

import (
	"iter"

	"github.com/norio-nomura/fmap/pkg/curry"
)

// MapGenerator0 returns a generator function whose sequences yield fn(v) for each v yielded by gen's.
func MapGenerator0[T, U any](fn func(T) U, gen func() iter.Seq[T]) func() iter.Seq[U] {
	return func() iter.Seq[U] {
		return func(yield func(U) bool) {
			Map(gen(), fn)(yield)
		}
	}
}

// MapGenerator returns a generator function whose sequences yield fn(v) for each v yielded by gen(a).
// gen is not called until the returned sequence is ranged over, and is called again on every range.
func MapGenerator[A, T, U any](fn func(T) U, gen func(A) iter.Seq[T]) func(A) iter.Seq[U] {
	return func(a A) iter.Seq[U] {
		return func(yield func(U) bool) {
			Map(gen(a), fn)(yield)
		}
	}
}

// MapGenerator2 is MapGenerator for two argument generators.
func MapGenerator2[A, B, T, U any](fn func(T) U, gen func(A, B) iter.Seq[T]) func(A, B) iter.Seq[U] {
	return func(a A, b B) iter.Seq[U] {
		return func(yield func(U) bool) {
			Map(gen(a, b), fn)(yield)
		}
	}
}

// MapGeneratorWith returns MapGenerator with fn already applied, waiting for the generator.
func MapGeneratorWith[A, T, U any](fn func(T) U) func(gen func(A) iter.Seq[T]) func(A) iter.Seq[U] {
	return curry.Curry2(MapGenerator[A, T, U])(fn)
}

// MapFunc maps fn over the sequences of a curried generator.
// The returned Func has the same arity as gen.
func MapFunc[T, U any](fn func(T) U, gen curry.Func[iter.Seq[T]]) curry.Func[iter.Seq[U]] {
	return curry.N(gen.Arity(), func(args ...any) iter.Seq[U] {
		return func(yield func(U) bool) {
			Map(gen.Invoke(args...), fn)(yield)
		}
	})
}
