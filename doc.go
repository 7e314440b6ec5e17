// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spsc provides bounded lock-free queues for exactly one producer
// goroutine and one consumer goroutine.
//
// Two designs are offered behind the common [Queue] interface:
//
//   - Index-tracked ([SPSC], [Inline]): any element type. Producer and
//     consumer each own a cursor on its own cache line and keep a cached
//     copy of the other side's cursor.
//   - Sentinel-tracked ([Sentinel]): pointer elements only. A slot holding
//     nil is empty, so no cursor comparison is needed, and the queue adds a
//     stop/drain handshake.
//
// # Quick Start
//
//	q, err := spsc.NewSPSC[Event](1024)     // heap storage, any capacity >= 1
//	var f spsc.Inline[Event, [1024]Event]   // storage embedded in the value
//	err = f.Init()
//	s, err := spsc.NewSentinel[Event](1024) // power-of-two slot count
//
// Configuration errors are returned by constructors only. [Must] turns them
// into panics for queues configured in source:
//
//	var ticks = spsc.Must(spsc.NewSPSC[Tick](4096))
//
// # Operations
//
// Index-tracked queues provide three producer flavours:
//
//	q.Push(v)       // spins while full, never drops
//	q.TryPush(v)    // returns false when full
//	q.ForcePush(v)  // never waits; overwrites the oldest element when full
//
// each with an Emplace form that fills the slot in place:
//
//	q.Emplace(func(e *Event) {
//	    e.ID = id
//	    e.Payload = append(e.Payload[:0], data...)
//	})
//
// and two consumer flavours:
//
//	v := q.Pop()          // spins while empty
//	v, ok := q.TryPop()   // returns false when empty
//
// Enqueue and Dequeue mirror TryPush and TryPop with [ErrWouldBlock], for
// code written against code.hybscloud.com/lfq.
//
// Size, Empty and Cap are available on every queue. Size and Empty are
// snapshots: with the other side running they may be stale by the time
// they return.
//
// # Waiting
//
// Push and Pop busy-wait using CPU pause instructions and never sleep; a
// blocked call has no cancellation. For bounded waits, build on TryPush and
// TryPop, or use [Send] and [Receive], which back off with [iox.Backoff]
// and honour a context:
//
//	ctx, cancel := context.WithTimeout(ctx, time.Second)
//	defer cancel()
//	if err := spsc.Send(ctx, q, ev); err != nil {
//	    return err // context.DeadlineExceeded
//	}
//
// # Graceful Shutdown
//
// [Sentinel.Stop] freezes the current write position. Further pushes are
// refused, and the consumer keeps popping until it reaches the frozen
// position, after which Pop returns nil instead of spinning:
//
//	// Producer
//	for _, ev := range events {
//	    s.Push(ev)
//	}
//	s.Stop()
//
//	// Consumer
//	for ev := s.Pop(); ev != nil; ev = s.Pop() {
//	    handle(ev)
//	}
//
// # Capacity
//
// Index-tracked queues use the capacity as given; one extra slack slot
// tells full from empty. Sentinel queues need a power-of-two capacity so
// positions wrap with a mask.
//
// # Thread Safety
//
// One goroutine may call the producer methods and one goroutine the
// consumer methods. Violating this causes undefined behavior including
// data corruption. Queues must not be copied after construction.
//
// # Race Detection
//
// Index-tracked queues publish plain slot writes through acquire-release
// cursor updates, and sentinel queues hand off through acquire-release slot,
// position and stop-flag operations. Go's race detector cannot observe
// either ordering, so concurrent tests are excluded under -race; see
// [RaceEnabled].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives with
// explicit memory ordering, [code.hybscloud.com/spin] for CPU pause
// instructions, [code.hybscloud.com/iox] for semantic errors and backoff,
// and [golang.org/x/sys/cpu] for the cache line size.
package spsc
