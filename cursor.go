// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// writerLine is the producer's cache line.
type writerLine struct {
	index     atomix.Uint64 // Write cursor (producer writes, consumer reads)
	readCache uint64        // Producer's cached view of the read cursor
	offset    uint64        // Buffer index of logical slot 0
	size      uint64        // Live slots including the slack slot
}

// readerLine is the consumer's cache line.
type readerLine struct {
	index      atomix.Uint64 // Read cursor (consumer writes, producer reads)
	writeCache uint64        // Consumer's cached view of the write cursor
	offset     uint64
	size       uint64
}

// cursors is the write/read cursor pair of an index-tracked ring.
//
// Both cursors range over [0, size) and wrap to 0, where size is the
// capacity plus one slack slot. The slack slot keeps full (w+1 == r) and
// empty (w == r) apart, and keeps a capacity-1 ring from live-locking.
//
// Each side keeps a plain copy of the other side's cursor and only reloads
// it, with acquire ordering, when the copy cannot decide full or empty.
// Publishing a cursor after touching a slot is a release operation; that
// pair is the only synchronization between producer and consumer. The read
// cursor is also advanced by the producer when it evicts, so the consumer
// publishes it with a compare-and-swap that never moves it backwards.
type cursors struct {
	_ pad
	w writerLine
	_ pad
	r readerLine
	_ pad
}

func (c *cursors) init(capacity, offset int) {
	size := uint64(capacity) + 1
	c.w = writerLine{offset: uint64(offset), size: size}
	c.r = readerLine{offset: uint64(offset), size: size}
}

// reserve spins until the producer owns a free slot. It returns the buffer
// index of the slot and the cursor value that publishes it.
func (c *cursors) reserve() (slot, next uint64) {
	w := c.w.index.LoadRelaxed()
	next = w + 1
	if next == c.w.size {
		next = 0
	}
	if next == c.w.readCache {
		sw := spin.Wait{}
		for {
			c.w.readCache = c.r.index.LoadAcquire()
			if next != c.w.readCache {
				break
			}
			sw.Once()
		}
	}
	return w + c.w.offset, next
}

// tryReserve is reserve without waiting.
func (c *cursors) tryReserve() (slot, next uint64, ok bool) {
	w := c.w.index.LoadRelaxed()
	next = w + 1
	if next == c.w.size {
		next = 0
	}
	if next == c.w.readCache {
		c.w.readCache = c.r.index.LoadAcquire()
		if next == c.w.readCache {
			return 0, 0, false
		}
	}
	return w + c.w.offset, next, true
}

// forceReserve never waits. On a full ring it first moves the read cursor
// past the oldest unread element, so that element is lost and occupancy
// stays at capacity once the write is published.
func (c *cursors) forceReserve() (slot, next uint64) {
	w := c.w.index.LoadRelaxed()
	next = w + 1
	if next == c.w.size {
		next = 0
	}
	if next == c.w.readCache {
		r := c.r.index.LoadAcquire()
		if next == r {
			evicted := r + 1
			if evicted == c.w.size {
				evicted = 0
			}
			// Fails only if the consumer released r meanwhile; either
			// way the cursor ends at evicted.
			c.r.index.CompareAndSwapAcqRel(r, evicted)
			r = c.r.index.LoadAcquire()
		}
		c.w.readCache = r
	}
	return w + c.w.offset, next
}

// commit publishes the slot handed out by a reserve call.
func (c *cursors) commit(next uint64) {
	c.w.index.StoreRelease(next)
}

// acquire spins until the consumer owns a filled slot. It returns the
// buffer index of the slot and the cursor value that releases it.
func (c *cursors) acquire() (slot, next uint64) {
	r := c.r.index.LoadRelaxed()
	if r == c.r.writeCache {
		sw := spin.Wait{}
		for {
			c.r.writeCache = c.w.index.LoadAcquire()
			if r != c.r.writeCache {
				break
			}
			sw.Once()
		}
	}
	next = r + 1
	if next == c.r.size {
		next = 0
	}
	return r + c.r.offset, next
}

// tryAcquire is acquire without waiting.
func (c *cursors) tryAcquire() (slot, next uint64, ok bool) {
	r := c.r.index.LoadRelaxed()
	if r == c.r.writeCache {
		c.r.writeCache = c.w.index.LoadAcquire()
		if r == c.r.writeCache {
			return 0, 0, false
		}
	}
	next = r + 1
	if next == c.r.size {
		next = 0
	}
	return r + c.r.offset, next, true
}

// release hands the slot returned by an acquire call back to the producer.
// The read cursor only moves forward: if forceReserve already advanced it
// past the acquired slot, release leaves it where the producer put it.
func (c *cursors) release(next uint64) {
	r := next - 1
	if next == 0 {
		r = c.r.size - 1
	}
	c.r.index.CompareAndSwapAcqRel(r, next)
}

// occupancy is a best-effort snapshot of the number of unread elements.
func (c *cursors) occupancy() int {
	w := c.w.index.LoadAcquire()
	r := c.r.index.LoadAcquire()
	if w >= r {
		return int(w - r)
	}
	return int(c.r.size - r + w)
}

func (c *cursors) drained() bool {
	return c.w.index.LoadAcquire() == c.r.index.LoadAcquire()
}

func (c *cursors) capacity() int {
	return int(c.r.size - 1)
}
