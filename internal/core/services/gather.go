package services

import (
	"context"
	"sync"
)

// outcome captures one branch's value or failure.
type outcome[T any] struct {
	value T
	err   error
}

// gather runs fn once per input concurrently and returns each branch's
// outcome in input order. A failing branch is captured in its slot and
// never aborts the other branches; the join point decides what to do
// with partial failure.
func gather[I, T any](ctx context.Context, inputs []I, fn func(context.Context, I) (T, error)) []outcome[T] {
	results := make([]outcome[T], len(inputs))

	var wg sync.WaitGroup
	wg.Add(len(inputs))

	for i, in := range inputs {
		go func(i int, in I) {
			defer wg.Done()
			v, err := fn(ctx, in)
			results[i] = outcome[T]{value: v, err: err}
		}(i, in)
	}

	wg.Wait()
	return results
}
