// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs CPU-bound work, such as password key derivation, off
// the caller's goroutine with a bounded level of parallelism.
//
// Work is never interrupted. Cancelling the caller's context abandons the
// result: the call returns immediately while the job runs to completion in
// the background and its slot is released afterwards.
package workers

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// Pool bounds the number of jobs running at the same time.
type Pool struct {
	sem  *semaphore.Weighted
	size int
}

// NewPool returns a pool running at most size jobs at once. A non-positive
// size means runtime.NumCPU().
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	return &Pool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: size,
	}
}

// Size returns the maximum number of concurrent jobs.
func (p *Pool) Size() int {
	return p.size
}

// Do runs fn on the pool and waits for its result.
//
// It returns ctx.Err() if ctx is done before a slot is free or before fn
// returns; in the latter case fn keeps running and its result is dropped.
func Do[T any](ctx context.Context, p *Pool, fn func() T) (T, error) {
	var zero T

	if err := p.sem.Acquire(ctx, 1); err != nil {
		return zero, err
	}

	done := make(chan T, 1)
	go func() {
		defer p.sem.Release(1)
		done <- fn()
	}()

	select {
	case v := <-done:
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
