package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestPool(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"inline", 1, 1},
		{"several", 4, 4},
		{"default", 0, runtime.GOMAXPROCS(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := Start(tt.workers)
			if pool.Workers() != tt.want {
				t.Errorf("Workers() = %d, want %d", pool.Workers(), tt.want)
			}

			var sum atomic.Int64
			for i := 1; i <= 100; i++ {
				pool.Do(func() { sum.Add(int64(i)) })
			}
			pool.Wait()

			if got := sum.Load(); got != 5050 {
				t.Errorf("sum = %d, want 5050", got)
			}
		})
	}
}

func TestPoolWaitTwice(t *testing.T) {
	pool := Start(2)
	pool.Do(func() {})
	pool.Wait()
	pool.Wait()
}
