//go:build !unix

// Package mmregion provides platform-specific helpers for anonymous
// memory-mapped regions backing arena allocation.
package mmregion

import "fmt"

// Map falls back to a heap-backed slice when mmap is not available.
func Map(size int) ([]byte, func() error, error) {
	if size < 0 {
		return nil, nil, fmt.Errorf("mmregion: negative size %d", size)
	}
	return make([]byte, size), func() error { return nil }, nil
}
