package future

import (
	"context"
	"fmt"
)

// Result holds the result (value or error) of a Future execution.
type Result[T any] struct {
	Value T
	Err   error
}

// split returns a runner executing task once and a receiver returning its result.
// A receiver whose ctx ends before the runner has finished returns ctx.Err() for that call only;
// later calls still get the task's result.
func split[T any](task Task[T]) (run func(context.Context), await Future[T]) {
	var result Result[T]
	done := make(chan struct{})
	run = func(ctx context.Context) {
		defer close(done)
		defer result.recover()
		result.Value, result.Err = task(ctx)
	}
	await = func(ctx context.Context) (T, error) {
		if err := wait(ctx, done); err != nil {
			var zero T
			return zero, err
		}
		return result.Value, result.Err
	}
	return run, await
}

// wait blocks until done is closed or ctx ends.
// A result that is already available wins over a canceled ctx.
func wait(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		select {
		case <-done:
			return nil
		default:
			return ctx.Err()
		}
	}
}

// recover turns a panic of the running task into Err.
// An error value is kept as is so that errors.Is keeps matching it.
func (r *Result[T]) recover() {
	switch v := recover().(type) {
	case nil:
	case error:
		r.Err = v
	default:
		r.Err = fmt.Errorf("%+v", v)
	}
}
