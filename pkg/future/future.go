// Package future provides deferred values and adapters that map over their results.
package future

import (
	"context"
	"sync"
)

// Task is a function type that performs an asynchronous computation and returns a value of type T or an error.
// It is intended to be executed once to produce a result.
type Task[T any] func(context.Context) (T, error)

// Future is a function type that returns the result (value or error) of a Task.
// It always returns the same result for all calls, regardless of how many times it is invoked.
type Future[T any] func(context.Context) (T, error)

// New starts task in its own goroutine immediately and returns a Future of its result.
func New[T any](ctx context.Context, task Task[T]) Future[T] {
	run, await := split(task)
	go run(ctx)
	return await
}

// NewDeferred returns a Future that starts task the first time it is awaited, using that caller's context.
func NewDeferred[T any](task Task[T]) Future[T] {
	run, await := split(task)
	var start sync.Once
	return func(ctx context.Context) (T, error) {
		start.Do(func() { go run(ctx) })
		return await(ctx)
	}
}

// NewValue returns a Future that always resolves to the given value.
func NewValue[T any](v T) Future[T] {
	return func(_ context.Context) (T, error) {
		return v, nil
	}
}

// NewError returns a Future that always fails with the given error.
func NewError[T any](err error) Future[T] {
	var zero T
	return func(_ context.Context) (T, error) {
		return zero, err
	}
}

// Await waits for the Future to complete and returns the value or error. Equivalent to calling f(ctx).
func (f Future[T]) Await(ctx context.Context) (T, error) {
	return f(ctx)
}
