package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsAllTasks(t *testing.T) {
	p := New(4, 16)
	results := p.Run(context.Background())

	var ran atomic.Int64
	for i := 0; i < 16; i++ {
		p.Submit(func(ctx context.Context) error {
			ran.Add(1)
			return nil
		})
	}
	p.Close()

	count := 0
	for r := range results {
		if r.Err != nil {
			t.Fatalf("unexpected error: %v", r.Err)
		}
		count++
	}
	if count != 16 || ran.Load() != 16 {
		t.Fatalf("expected 16 tasks, got count=%d ran=%d", count, ran.Load())
	}
}

func TestPoolReportsTaskErrors(t *testing.T) {
	p := New(2, 4)
	results := p.Run(context.Background())

	boom := errors.New("boom")
	p.Submit(func(ctx context.Context) error { return boom })
	p.Submit(func(ctx context.Context) error { return nil })
	p.Close()

	var failed int
	for r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Fatalf("expected 1 failed task, got %d", failed)
	}
}

func TestPoolStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := New(1, 1)
	results := p.Run(ctx)

	cancel()

	select {
	case _, open := <-results:
		if open {
			t.Fatalf("expected closed result channel after cancel")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("pool did not stop after cancel")
	}
}
