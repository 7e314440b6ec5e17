// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "reflect"

// ring is the index-tracked queue shared by [SPSC] and [Inline]. It owns
// the cursor pair; the storage behind buf belongs to the embedding type.
type ring[T any] struct {
	noCopy noCopy
	cursors
	buf      []T
	dropRefs bool // Clear consumed slots (T holds pointers)
}

func (q *ring[T]) init(buf []T, capacity, offset int) {
	q.cursors.init(capacity, offset)
	q.buf = buf
	q.dropRefs = holdsPointers(reflect.TypeFor[T]())
}

// Push adds an element, spinning while the queue is full (producer only).
// Push never drops data.
func (q *ring[T]) Push(elem T) {
	slot, next := q.reserve()
	q.buf[slot] = elem
	q.commit(next)
}

// Emplace is Push for elements built in place: init receives the slot
// after it has been reserved and before it is published (producer only).
// The slot holds whatever value it held last; init must set every field
// it relies on.
func (q *ring[T]) Emplace(init func(slot *T)) {
	slot, next := q.reserve()
	init(&q.buf[slot])
	q.commit(next)
}

// ForcePush adds an element without checking for room (producer only).
// When the queue is full the oldest unread element is overwritten.
//
// Each eviction drops the oldest unread element. The read cursor never
// moves backwards, so the queue keeps holding capacity elements afterwards,
// also when a Pop is in flight. What such a Pop returns depends on how many
// ForcePush calls on a full queue overlap it:
//
//   - one: the evicted element is the one being popped, and it is still
//     returned; nothing is lost to that eviction.
//   - two or more: the second one rewrites the slot being read. Pop may
//     return the old element, the new one, or for multi-word T a mix of
//     both. If it returns the new element, that element is delivered
//     again by a later Pop; for T holding pointers the later Pop may yield
//     the zero value instead, as the first Pop clears the slot.
//   - capacity+1 or more: in addition, one more element than was evicted
//     may be dropped.
//
// Use ForcePush only where the producer must never stall and losing
// elements is acceptable.
func (q *ring[T]) ForcePush(elem T) {
	slot, next := q.forceReserve()
	q.buf[slot] = elem
	q.commit(next)
}

// ForceEmplace is ForcePush for elements built in place.
func (q *ring[T]) ForceEmplace(init func(slot *T)) {
	slot, next := q.forceReserve()
	init(&q.buf[slot])
	q.commit(next)
}

// TryPush adds an element if there is room (producer only).
// Returns false, leaving the queue untouched, if the queue is full.
func (q *ring[T]) TryPush(elem T) bool {
	slot, next, ok := q.tryReserve()
	if !ok {
		return false
	}
	q.buf[slot] = elem
	q.commit(next)
	return true
}

// TryEmplace is TryPush for elements built in place. init is not called
// when the queue is full.
func (q *ring[T]) TryEmplace(init func(slot *T)) bool {
	slot, next, ok := q.tryReserve()
	if !ok {
		return false
	}
	init(&q.buf[slot])
	q.commit(next)
	return true
}

// Enqueue adds an element (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *ring[T]) Enqueue(elem *T) error {
	slot, next, ok := q.tryReserve()
	if !ok {
		return ErrWouldBlock
	}
	q.buf[slot] = *elem
	q.commit(next)
	return nil
}

// Pop removes and returns the oldest element, spinning while the queue is
// empty (consumer only).
func (q *ring[T]) Pop() T {
	slot, next := q.acquire()
	elem := q.take(slot)
	q.release(next)
	return elem
}

// PopInto is Pop storing the element into out.
func (q *ring[T]) PopInto(out *T) {
	slot, next := q.acquire()
	*out = q.take(slot)
	q.release(next)
}

// TryPop removes and returns the oldest element (consumer only).
// Returns (zero-value, false) if the queue is empty.
func (q *ring[T]) TryPop() (T, bool) {
	slot, next, ok := q.tryAcquire()
	if !ok {
		var zero T
		return zero, false
	}
	elem := q.take(slot)
	q.release(next)
	return elem, true
}

// TryPopInto is TryPop storing the element into out. out is left
// untouched when the queue is empty.
func (q *ring[T]) TryPopInto(out *T) bool {
	slot, next, ok := q.tryAcquire()
	if !ok {
		return false
	}
	*out = q.take(slot)
	q.release(next)
	return true
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *ring[T]) Dequeue() (T, error) {
	elem, ok := q.TryPop()
	if !ok {
		return elem, ErrWouldBlock
	}
	return elem, nil
}

// take moves the element out of slot. Pointer-free elements are copied
// and the slot is left for the next write to overwrite.
func (q *ring[T]) take(slot uint64) T {
	elem := q.buf[slot]
	if q.dropRefs {
		var zero T
		q.buf[slot] = zero
	}
	return elem
}

// Size returns the number of unread elements.
// The value is a snapshot and may be stale while the other side runs.
func (q *ring[T]) Size() int {
	return q.occupancy()
}

// Empty reports whether the queue holds no unread elements.
// Like Size, the result is a snapshot.
func (q *ring[T]) Empty() bool {
	return q.drained()
}

// Cap returns the queue capacity. The slack slot is not counted.
func (q *ring[T]) Cap() int {
	return q.capacity()
}
