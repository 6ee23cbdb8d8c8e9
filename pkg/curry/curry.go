// Package curry provides partial application helpers.
//
// This file contains the statically typed helpers.
package curry

// Curry2 takes a two argument function and returns a function that accepts the first argument
// and then returns a function that accepts the second argument.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}
