// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"fmt"
	"math"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Sentinel is a single-producer single-consumer bounded queue of pointers
// that uses nil as the empty-slot marker.
//
// Instead of comparing cursors, the producer waits for its slot to hold
// nil and the consumer waits for its slot to hold a non-nil pointer; the
// slot itself carries the handoff. Positions grow monotonically and are
// mapped onto the ring with a mask, so the slot count must be a power of
// two. Each slot occupies its own cache line.
//
// Sentinel adds a stop handshake: after [Sentinel.Stop] the producer stops
// accepting elements, and the consumer drains what was accepted before
// Pop reports end-of-stream by returning nil.
//
// Memory: capacity cache lines
type Sentinel[E any] struct {
	noCopy        noCopy
	_             pad
	write         atomix.Uint64 // Producer position
	_             pad
	read          atomix.Uint64 // Consumer position
	_             pad
	exitMarker    atomix.Uint64 // Write position frozen by Stop
	exitRequested atomix.Bool
	_             pad
	slots         []sentinelSlot[E]
	mask          uint64
}

type sentinelSlot[E any] struct {
	elem atomix.Pointer[E] // nil when empty
	_    [cacheLineSize - ptrSize]byte
}

// NewSentinel creates a new Sentinel queue with capacity slots.
//
// Returns ErrInvalidCapacity if capacity < 1, ErrInvalidRingSize if
// capacity is not a power of two, and ErrCapacityOverflow if the slots
// would not be addressable.
func NewSentinel[E any](capacity int) (*Sentinel[E], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	mask := uint64(capacity - 1)
	if mask&(mask+1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRingSize, capacity)
	}
	if capacity > math.MaxInt/cacheLineSize {
		return nil, fmt.Errorf("%w: %d slots", ErrCapacityOverflow, capacity)
	}

	return &Sentinel[E]{
		slots: make([]sentinelSlot[E], capacity),
		mask:  mask,
	}, nil
}

// Push adds an element, spinning while its slot is occupied (producer
// only). Once Stop has been called Push returns without adding elem,
// including when it is already waiting.
//
// Push panics if elem is nil.
func (q *Sentinel[E]) Push(elem *E) {
	if elem == nil {
		panic("spsc: nil element pushed to Sentinel queue")
	}
	if q.exitRequested.LoadAcquire() {
		return
	}

	pos := q.write.LoadRelaxed()
	slot := &q.slots[pos&q.mask].elem
	sw := spin.Wait{}
	for slot.LoadAcquire() != nil {
		if q.exitRequested.LoadAcquire() {
			return
		}
		sw.Once()
	}

	slot.StoreRelease(elem)
	q.write.StoreRelease(pos + 1)
}

// TryPush adds an element if its slot is free (producer only).
// Returns false if the queue is full or stopped.
//
// TryPush panics if elem is nil.
func (q *Sentinel[E]) TryPush(elem *E) bool {
	if elem == nil {
		panic("spsc: nil element pushed to Sentinel queue")
	}
	if q.exitRequested.LoadAcquire() {
		return false
	}

	pos := q.write.LoadRelaxed()
	slot := &q.slots[pos&q.mask].elem
	if slot.LoadAcquire() != nil {
		return false
	}
	slot.StoreRelease(elem)
	q.write.StoreRelease(pos + 1)
	return true
}

// Enqueue adds an element (producer only).
// Returns ErrStopped after Stop, or ErrWouldBlock if the queue is full.
func (q *Sentinel[E]) Enqueue(elem *E) error {
	if q.exitRequested.LoadAcquire() {
		return ErrStopped
	}
	if !q.TryPush(elem) {
		return ErrWouldBlock
	}
	return nil
}

// Pop removes and returns the oldest element, spinning while the queue is
// empty (consumer only).
//
// After Stop, Pop keeps returning elements until the read position reaches
// the position frozen by Stop; from then on it returns nil immediately.
func (q *Sentinel[E]) Pop() *E {
	pos := q.read.LoadRelaxed()
	slot := &q.slots[pos&q.mask].elem
	sw := spin.Wait{}
	for {
		if elem := slot.LoadAcquire(); elem != nil {
			slot.StoreRelease(nil)
			q.read.StoreRelease(pos + 1)
			return elem
		}
		if q.exitRequested.LoadAcquire() && pos >= q.exitMarker.LoadAcquire() {
			return nil
		}
		sw.Once()
	}
}

// TryPop removes and returns the oldest element (consumer only).
// Returns (nil, false) if the queue is empty.
func (q *Sentinel[E]) TryPop() (*E, bool) {
	pos := q.read.LoadRelaxed()
	slot := &q.slots[pos&q.mask].elem
	elem := slot.LoadAcquire()
	if elem == nil {
		return nil, false
	}
	slot.StoreRelease(nil)
	q.read.StoreRelease(pos + 1)
	return elem, true
}

// Dequeue removes and returns an element (consumer only).
// Returns (nil, ErrStopped) once the queue is drained after Stop, or
// (nil, ErrWouldBlock) if it is empty.
func (q *Sentinel[E]) Dequeue() (*E, error) {
	if elem, ok := q.TryPop(); ok {
		return elem, nil
	}
	if q.Drained() {
		return nil, ErrStopped
	}
	return nil, ErrWouldBlock
}

// Stop freezes the current write position as the end of the stream and
// stops the producer. It may be called from any goroutine; calls after the
// first have no effect.
//
// Elements accepted before Stop are still delivered. For an exact end of
// stream, call Stop from the producer goroutine, or after the producer has
// returned. An element pushed concurrently with Stop from another
// goroutine may be dropped.
func (q *Sentinel[E]) Stop() {
	if q.exitRequested.LoadAcquire() {
		return
	}
	q.exitMarker.StoreRelease(q.write.LoadAcquire())
	q.exitRequested.StoreRelease(true)
}

// Stopped reports whether Stop has been called.
func (q *Sentinel[E]) Stopped() bool {
	return q.exitRequested.LoadAcquire()
}

// Drained reports whether Stop has been called and every element accepted
// before it has been consumed. Meaningful on the consumer side.
func (q *Sentinel[E]) Drained() bool {
	return q.exitRequested.LoadAcquire() && q.read.LoadAcquire() >= q.exitMarker.LoadAcquire()
}

// Size returns the number of unread elements.
// The value is a snapshot and may be stale while the other side runs.
func (q *Sentinel[E]) Size() int {
	r := q.read.LoadAcquire()
	w := q.write.LoadAcquire()
	if w <= r {
		return 0
	}
	return int(min(w-r, q.mask+1))
}

// Empty reports whether the queue holds no unread elements.
func (q *Sentinel[E]) Empty() bool {
	return q.Size() == 0
}

// Cap returns the queue capacity.
func (q *Sentinel[E]) Cap() int {
	return int(q.mask + 1)
}
