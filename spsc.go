// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// SPSC is a single-producer single-consumer bounded queue with heap
// storage sized at runtime.
//
// Based on Lamport's ring buffer with cached index optimization.
// The producer caches the consumer's read cursor, and vice versa,
// reducing cross-core cache line traffic. The buffer carries one slack
// slot and a cache line of unused slots at each end, so the live slots
// never share a cache line with neighbouring allocations.
//
// Memory: capacity + 1 + 2*ceil(cacheLine/sizeof(T)) slots
//
// An SPSC must not be copied; use it through the pointer returned by
// [NewSPSC].
type SPSC[T any] struct {
	ring[T]
}

// NewSPSC creates a new SPSC queue holding up to capacity elements.
// Unlike most ring buffers the capacity is used as given; it is not
// rounded to a power of two.
//
// Returns ErrInvalidCapacity if capacity < 1, and ErrCapacityOverflow if
// the padded buffer would not be addressable.
func NewSPSC[T any](capacity int) (*SPSC[T], error) {
	buf, offset, err := newHeapStore[T](capacity)
	if err != nil {
		return nil, err
	}

	q := &SPSC[T]{}
	q.init(buf, capacity, offset)
	return q, nil
}

// Must returns q, panicking if err is non-nil. It is meant for queues
// whose configuration is fixed in source:
//
//	var events = spsc.Must(spsc.NewSPSC[Event](1024))
func Must[Q any](q Q, err error) Q {
	if err != nil {
		panic(err)
	}
	return q
}
