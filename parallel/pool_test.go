package parallel

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestPool(t *testing.T) {
	for _, workers := range []int{1, 4, 0} {
		pool := Start(workers)

		var sum atomic.Int64
		for i := range 100 {
			pool.Do(func() error {
				sum.Add(int64(i))
				if i%10 == 0 {
					return errors.New("fail")
				}
				return nil
			})
		}
		stats := pool.Wait()

		if sum.Load() != 4950 {
			t.Fatalf("%d workers: expected sum 4950, got %d", workers, sum.Load())
		}
		if stats.Processed != 90 || stats.Failed != 10 || stats.Total() != 100 {
			t.Fatalf("%d workers: unexpected stats %+v", workers, stats)
		}
	}
}

func TestPoolWaitIsIdempotent(t *testing.T) {
	pool := Start(2)
	pool.Do(func() error { return nil })
	pool.Wait()
	if stats := pool.Wait(); stats.Processed != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}
