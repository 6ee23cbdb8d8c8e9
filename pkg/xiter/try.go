// Package xiter provides adapters for Go 1.23+ iter.Seq, including TryMap.
//
// This file contains adapters for sequences that report failures as iter.Seq2[T, error].
package xiter

import "iter"

// TryMap returns a new iter.Seq2[U, error] that yields fn(v) for each value v of seq.
// The first error, from seq or from fn, is yielded once with the zero value and ends the sequence.
// fn is not called for a pair that carries an error.
func TryMap[T, U any](seq iter.Seq2[T, error], fn func(T) (U, error)) iter.Seq2[U, error] {
	return func(yield func(U, error) bool) {
		var zero U
		for v, err := range seq {
			if err != nil {
				yield(zero, err)
				return
			}
			u, err := fn(v)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(u, nil) {
				return
			}
		}
	}
}

// TryMapGenerator is MapGenerator for generators of iter.Seq2[T, error].
func TryMapGenerator[A, T, U any](fn func(T) (U, error), gen func(A) iter.Seq2[T, error]) func(A) iter.Seq2[U, error] {
	return func(a A) iter.Seq2[U, error] {
		return func(yield func(U, error) bool) {
			TryMap(gen(a), fn)(yield)
		}
	}
}
