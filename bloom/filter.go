// Package bloom provides bounded-memory identifier sets using Bloom filters.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/lexso"
)

// Ensure Filter implements lexso.SeenSet at compile time.
var _ lexso.SeenSet = (*Filter)(nil)

// Filter remembers entity identifiers across documents. Its size is fixed
// at construction, so memory does not grow with the corpus.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected identifiers
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd records the identifier and returns true if it might have been
// recorded before. False positives are possible; false negatives are not.
func (f *Filter) TestAndAdd(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAddString(id)
}

// EstimatedCount returns the approximate number of identifiers recorded.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}
