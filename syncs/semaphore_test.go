package syncs

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
)

func TestSemaphoreBounds(t *testing.T) {
	sem := NewSemaphore(2)
	var running, peak atomic.Int32
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem.Acquire()
			defer sem.Release()
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			running.Add(-1)
		}()
	}
	wg.Wait()
	if p := peak.Load(); p > 2 {
		t.Fatalf("got %v", p)
	}
}

func TestSemaphoreAcquireContext(t *testing.T) {
	sem := NewSemaphore(1)
	sem.Acquire()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sem.AcquireContext(ctx); err == nil {
		t.Fatal("should error")
	}
	sem.Release()
	if err := sem.AcquireContext(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func TestSemaphoreMinimumSize(t *testing.T) {
	if c := cap(NewSemaphore(0)); c != 1 {
		t.Fatalf("got %v", c)
	}
}
