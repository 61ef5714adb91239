package id

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a, b := New(), New()

	assert.True(t, IsValid(a))
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"not-a-uuid", false},
		{"3f0e1c1e-8a4e-4bd1-9f61-0b7a2a1f8c11", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.in))
		})
	}
}

func TestNextSequence_StrictlyIncreasingAcrossGoroutines(t *testing.T) {
	const workers, perWorker = 8, 500

	var mu sync.Mutex
	seen := make(map[int64]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prev := int64(0)
			local := make([]int64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				n := NextSequence()
				assert.Greater(t, n, prev)
				prev = n
				local = append(local, n)
			}
			mu.Lock()
			for _, n := range local {
				seen[n] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
