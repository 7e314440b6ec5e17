// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"fmt"
	"unsafe"
)

// Inline is an SPSC queue whose storage is embedded in the queue value.
// A must be an array type [N]T; the queue holds up to N elements.
//
// The cursors, the slots and one slack slot live in a single object,
// framed by cache line padding, so an Inline can sit on the stack, in a
// global, or inside another struct without a separate buffer allocation.
// The queue keeps a view into its own storage: after [Inline.Init] it must
// not be copied or moved.
//
// Example:
//
//	var q spsc.Inline[Tick, [256]Tick] // capacity fixed at 256
//	if err := q.Init(); err != nil {
//	    panic(err)
//	}
type Inline[T, A any] struct {
	ring[T]
	_     pad
	slots A
	slack T // Must directly follow slots
	_     pad
}

// NewInline allocates and initializes an Inline queue.
// See [Inline.Init] for the capacity argument.
func NewInline[T, A any](capacity ...int) (*Inline[T, A], error) {
	q := new(Inline[T, A])
	if err := q.Init(capacity...); err != nil {
		return nil, err
	}
	return q, nil
}

// Init prepares q for use and empties it.
//
// The capacity is fixed by A. Init accepts an optional capacity only to
// reject it: any non-zero value returns ErrFixedCapacity. Init also
// returns ErrElementType if A is not an array of T, ErrInvalidCapacity if
// it has no elements, and ErrInlineTooLarge if it exceeds MaxInlineBytes.
//
// Init must not run concurrently with any other method.
func (q *Inline[T, A]) Init(capacity ...int) error {
	for _, c := range capacity {
		if c != 0 {
			return fmt.Errorf("%w: got %d", ErrFixedCapacity, c)
		}
	}
	n, err := inlineLen[T, A]()
	if err != nil {
		return err
	}

	buf := unsafe.Slice((*T)(unsafe.Pointer(&q.slots)), n+1)
	clear(buf)
	q.init(buf, n, 0)
	return nil
}
