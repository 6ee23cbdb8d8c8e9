/*
Copyright © 2025 Norio Nomura

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/samber/lo"

	"github.com/norio-nomura/fmap/pkg/future"
	"github.com/norio-nomura/fmap/pkg/options"
	"github.com/norio-nomura/fmap/pkg/xiter"
)

func main() {
	var (
		debug                bool
		readOptionsFromStdin bool
	)
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&readOptionsFromStdin, "stdin", false, "Read JSON options from stdin")
	flag.Parse()
	if debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	load := options.FromEnv
	if readOptionsFromStdin {
		load = options.FromStdin
	}
	opt, err := load()
	if err != nil {
		slog.Error("Failed to load options", slog.Any("err", err))
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()
	if err := run(ctx, opt); err != nil {
		slog.Error("fmap failed", slog.Any("err", err))
		os.Exit(1)
	}
}

// run maps the configured transform over an asynchronous lookup and over a generator of the configured values.
func run(ctx context.Context, o *options.Options) error {
	transform := func(n int) int { return n*o.Factor + o.Offset }

	lookup := func(n int) future.Future[int] {
		return future.New(ctx, func(_ context.Context) (int, error) {
			slog.Debug("lookup", slog.Int("value", n))
			return n, nil
		})
	}
	mappedLookup := future.MapAsync(transform, lookup)

	waitCtx, cancel := o.ContextWithTimeout(ctx)
	defer cancel()
	futures := lo.Map(o.Values, func(n int, _ int) future.Future[int] { return mappedLookup(n) })
	async := make([]int, 0, len(futures))
	for i, f := range futures {
		v, err := f.Await(waitCtx)
		if err != nil {
			return fmt.Errorf("failed to await value %d: %w", o.Values[i], err)
		}
		slog.Info("async", slog.Int("in", o.Values[i]), slog.Int("out", v))
		async = append(async, v)
	}

	values := func(vals []int) iter.Seq[int] { return xiter.SeqOf(vals...) }
	generated := slices.Collect(xiter.MapGenerator(transform, values)(o.Values))
	for i, v := range generated {
		slog.Info("generator", slog.Int("in", o.Values[i]), slog.Int("out", v))
	}

	slog.Info("done", slog.Int("asyncSum", lo.Sum(async)), slog.Int("generatorSum", lo.Sum(generated)))
	return nil
}
