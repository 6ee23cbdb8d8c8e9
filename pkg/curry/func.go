// Package curry provides partial application helpers.
//
// This file contains Func, which accumulates untyped arguments up to a fixed arity.
package curry

import "slices"

// Func is a function of a fixed arity that collects its arguments across any number of Apply calls.
// A Func is an immutable value: applying arguments never modifies the receiver.
type Func[R any] struct {
	arity int
	args  []any
	body  func(args ...any) R
}

// N returns a Func that invokes body once arity arguments have been supplied.
// A negative arity is treated as 0.
func N[R any](arity int, body func(args ...any) R) Func[R] {
	return Func[R]{arity: max(arity, 0), body: body}
}

// Arity returns the number of arguments still needed before the body is invoked.
func (f Func[R]) Arity() int {
	return max(f.arity-len(f.args), 0)
}

// Apply supplies args after the ones already accumulated.
// If the total reaches the arity, body is invoked with all of them (including any extra) and done is true.
// Otherwise next is a Func waiting for the remaining arguments and body is not invoked.
func (f Func[R]) Apply(args ...any) (next Func[R], result R, done bool) {
	next = Func[R]{arity: f.arity, args: slices.Concat(f.args, args), body: f.body}
	if len(next.args) < next.arity {
		return next, result, false
	}
	return next, next.body(next.args...), true
}

// Invoke calls body with the accumulated arguments followed by args, without checking the arity.
func (f Func[R]) Invoke(args ...any) R {
	return f.body(slices.Concat(f.args, args)...)
}
