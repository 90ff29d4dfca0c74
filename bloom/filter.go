// Package bloom provides approximate URL deduplication for crawls.
package bloom

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter tracks which URLs a crawl has already seen. URLs differing
// only by fragment identify the same page and are treated as
// duplicates. False positives are possible; false negatives are not.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Canonical returns the URL with any fragment removed.
func Canonical(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}

// Add marks a URL as seen.
func (f *Filter) Add(url string) {
	f.f.AddString(Canonical(url))
}

// Test returns true if the URL might have been seen.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(Canonical(url))
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
