// Package xiter provides adapters for Go 1.23+ iter.Seq, including Map and MapGenerator.
//
// This file contains Map, the per-value transform the other adapters build on.
package xiter

import "iter"

// Map returns a new iter.Seq[U] that yields fn(v) for each v in seq, in order.
// Values are pulled from seq one at a time, only as the consumer asks for them.
// If fn or seq panics, the panic reaches the consumer at that point of the iteration.
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}
