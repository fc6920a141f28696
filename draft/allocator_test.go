package draft

import (
	"errors"
	"testing"

	"github.com/fantasydraft/draftpick/models"
)

// zeroReader always yields zero bytes, which makes rand.Int return 0
// and the allocator pick the lowest available number.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestAllocateBounds(t *testing.T) {
	a := NewAllocator()

	tests := []struct {
		name string
		used map[int]bool
	}{
		{"empty pool", map[int]bool{}},
		{"low numbers taken", map[int]bool{1: true, 2: true, 3: true}},
		{"high numbers taken", map[int]bool{8: true, 9: true, 10: true}},
		{"alternating", map[int]bool{1: true, 3: true, 5: true, 7: true, 9: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				n, err := a.Allocate(tt.used)
				if err != nil {
					t.Fatalf("Allocate returned error: %v", err)
				}
				if n < 1 || n > models.PoolSize {
					t.Fatalf("Allocate returned %d, outside [1, %d]", n, models.PoolSize)
				}
				if tt.used[n] {
					t.Fatalf("Allocate returned already-used number %d", n)
				}
			}
		})
	}
}

func TestAllocateLastRemaining(t *testing.T) {
	a := NewAllocator()

	used := make(map[int]bool)
	for n := 1; n <= models.PoolSize; n++ {
		if n != 4 {
			used[n] = true
		}
	}

	got, err := a.Allocate(used)
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	if got != 4 {
		t.Errorf("expected last remaining number 4, got %d", got)
	}
}

func TestAllocateExhausted(t *testing.T) {
	a := NewAllocator()

	used := make(map[int]bool)
	for n := 1; n <= models.PoolSize; n++ {
		used[n] = true
	}

	_, err := a.Allocate(used)
	if !errors.Is(err, ErrPoolExhausted) {
		t.Errorf("expected ErrPoolExhausted, got %v", err)
	}
}

func TestAllocateDeterministicSource(t *testing.T) {
	a := NewAllocatorWithSource(zeroReader{})

	n, err := a.Allocate(map[int]bool{1: true, 2: true})
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	if n != 3 {
		t.Errorf("zero source should pick lowest available number 3, got %d", n)
	}
}

// TestAllocateUniform checks that draws over the full pool are roughly
// uniform. With 10000 trials each number expects 1000 hits with a
// standard deviation of about 30, so 800..1200 leaves huge slack.
func TestAllocateUniform(t *testing.T) {
	a := NewAllocator()

	const trials = 10000
	counts := make(map[int]int, models.PoolSize)
	for i := 0; i < trials; i++ {
		n, err := a.Allocate(map[int]bool{})
		if err != nil {
			t.Fatalf("Allocate returned error: %v", err)
		}
		counts[n]++
	}

	for n := 1; n <= models.PoolSize; n++ {
		if counts[n] < 800 || counts[n] > 1200 {
			t.Errorf("number %d drawn %d times out of %d, expected roughly %d",
				n, counts[n], trials, trials/models.PoolSize)
		}
	}
}
