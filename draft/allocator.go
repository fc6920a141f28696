package draft

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/fantasydraft/draftpick/models"
)

// ErrPoolExhausted is returned when every number in the pool is taken.
// The roster capacity check runs before allocation, so seeing this
// error with a roster below capacity means an invariant was broken.
var ErrPoolExhausted = errors.New("draft number pool exhausted")

// Allocator draws draft numbers without replacement from the fixed
// pool [1, models.PoolSize]. It holds no roster state of its own; the
// caller supplies the set of numbers already taken.
type Allocator struct {
	source io.Reader
}

func NewAllocator() *Allocator {
	return &Allocator{source: rand.Reader}
}

// NewAllocatorWithSource allows tests to substitute a deterministic
// random source.
func NewAllocatorWithSource(source io.Reader) *Allocator {
	return &Allocator{source: source}
}

// Allocate returns a number drawn uniformly at random from the pool
// values not present in used. Every unused number has equal selection
// probability; rand.Int performs rejection sampling, so there is no
// modulo bias toward low numbers.
func (a *Allocator) Allocate(used map[int]bool) (int, error) {
	available := make([]int, 0, models.PoolSize)
	for n := 1; n <= models.PoolSize; n++ {
		if !used[n] {
			available = append(available, n)
		}
	}
	if len(available) == 0 {
		return 0, ErrPoolExhausted
	}

	idx, err := rand.Int(a.source, big.NewInt(int64(len(available))))
	if err != nil {
		return 0, fmt.Errorf("failed to read random source: %w", err)
	}
	return available[idx.Int64()], nil
}
