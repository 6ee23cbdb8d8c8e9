package future

import (
	"context"

	"github.com/norio-nomura/fmap/pkg/curry"
)

// Map returns a Future that resolves to fn applied to the value f resolves to.
// If f fails, the returned Future fails with the same error and fn is not called.
// If fn panics, the returned Future fails with the panic value.
// fn runs once, as soon as f resolves, whether or not the returned Future is awaited.
func Map[T, U any](f Future[T], fn func(T) U) Future[U] {
	return TryMap(f, func(v T) (U, error) { return fn(v), nil })
}

// TryMap is Map for a fn that reports failure by returning an error.
// Awaiting the returned Future with a ctx that ends early fails that await only;
// neither f nor the returned Future keeps the ctx error.
func TryMap[T, U any](f Future[T], fn func(T) (U, error)) Future[U] {
	return New(context.Background(), func(ctx context.Context) (U, error) {
		v, err := f(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v)
	})
}

// MapAsync0 returns a function that calls src and maps fn over the Future it returns.
func MapAsync0[T, U any](fn func(T) U, src func() Future[T]) func() Future[U] {
	return func() Future[U] {
		return Map(src(), fn)
	}
}

// MapAsync returns a function that calls src with its argument and maps fn over the Future src returns.
// Every call invokes src again; nothing is shared between calls.
func MapAsync[A, T, U any](fn func(T) U, src func(A) Future[T]) func(A) Future[U] {
	return func(a A) Future[U] {
		return Map(src(a), fn)
	}
}

// MapAsync2 is MapAsync for two argument sources.
func MapAsync2[A, B, T, U any](fn func(T) U, src func(A, B) Future[T]) func(A, B) Future[U] {
	return func(a A, b B) Future[U] {
		return Map(src(a, b), fn)
	}
}

// MapAsyncWith returns MapAsync with fn already applied, waiting for the source.
func MapAsyncWith[A, T, U any](fn func(T) U) func(src func(A) Future[T]) func(A) Future[U] {
	return curry.Curry2(MapAsync[A, T, U])(fn)
}

// MapFunc maps fn over the Future returned by a curried src.
// The returned Func has the same arity as src and calls src only when all of its arguments are supplied.
func MapFunc[T, U any](fn func(T) U, src curry.Func[Future[T]]) curry.Func[Future[U]] {
	return curry.N(src.Arity(), func(args ...any) Future[U] {
		return Map(src.Invoke(args...), fn)
	})
}
