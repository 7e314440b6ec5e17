// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// Queue is the combined producer-consumer interface for a bounded SPSC
// queue.
//
// Two designs implement it:
//
//	*SPSC[T], *Inline[T, A]  index-tracked, any element type   → Queue[T]
//	*Sentinel[E]             nil-tracked, pointer elements     → Queue[*E]
//
// Exactly one goroutine may use the Producer half and exactly one the
// Consumer half; they may be the same goroutine.
//
// Example:
//
//	var q spsc.Queue[int] = spsc.Must(spsc.NewSPSC[int](1024))
//
//	q.Push(42)          // spins while full
//	if !q.TryPush(43) { // never spins
//	    // Handle full queue
//	}
//
//	fmt.Println(q.Pop()) // spins while empty
//	if v, ok := q.TryPop(); ok {
//	    fmt.Println(v)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]

	// Size returns a snapshot of the number of unread elements.
	Size() int

	// Empty reports whether the queue holds no unread elements.
	Empty() bool

	// Cap returns the maximum number of unread elements.
	Cap() int
}

// Producer is the interface for enqueueing elements.
type Producer[T any] interface {
	// Push adds an element, busy-waiting while the queue is full.
	// It never yields to the scheduler or sleeps.
	Push(elem T)

	// TryPush adds an element and returns true, or returns false without
	// modifying the queue if the element cannot be accepted now.
	TryPush(elem T) bool
}

// Consumer is the interface for dequeueing elements.
type Consumer[T any] interface {
	// Pop removes and returns the oldest element, busy-waiting while the
	// queue is empty.
	Pop() T

	// TryPop removes and returns the oldest element and true, or returns
	// (zero-value, false) without modifying the queue if it is empty.
	TryPop() (T, bool)
}

// Stopper is implemented by queues with a stop handshake ([Sentinel]).
type Stopper interface {
	// Stop ends the stream at the current write position.
	Stop()

	// Stopped reports whether Stop has been called.
	Stopped() bool

	// Drained reports whether the stream ended and has been consumed.
	Drained() bool
}

var (
	_ Queue[int]  = (*SPSC[int])(nil)
	_ Queue[int]  = (*Inline[int, [8]int])(nil)
	_ Queue[*int] = (*Sentinel[int])(nil)
	_ Stopper     = (*Sentinel[int])(nil)
)
