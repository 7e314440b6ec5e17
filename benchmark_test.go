// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc_test

import (
	"fmt"
	"sync"
	"testing"

	"code.hybscloud.com/spsc"
)

// =============================================================================
// Single Goroutine
// =============================================================================

func BenchmarkSPSC_SingleOp(b *testing.B) {
	q := spsc.Must(spsc.NewSPSC[int](1024))

	b.ResetTimer()
	for i := range b.N {
		q.Push(i)
		q.Pop()
	}
}

func BenchmarkInline_SingleOp(b *testing.B) {
	q := spsc.Must(spsc.NewInline[int, [1024]int]())

	b.ResetTimer()
	for i := range b.N {
		q.Push(i)
		q.Pop()
	}
}

func BenchmarkSentinel_SingleOp(b *testing.B) {
	q := spsc.Must(spsc.NewSentinel[int](1024))
	val := 42

	b.ResetTimer()
	for range b.N {
		q.Push(&val)
		q.Pop()
	}
}

func BenchmarkSPSC_TryOp(b *testing.B) {
	q := spsc.Must(spsc.NewSPSC[int](1024))

	b.ResetTimer()
	for i := range b.N {
		q.TryPush(i)
		q.TryPop()
	}
}

func BenchmarkSPSC_Emplace(b *testing.B) {
	type message struct {
		id   uint64
		body [56]byte
	}
	q := spsc.Must(spsc.NewSPSC[message](1024))
	var out message

	b.ResetTimer()
	for i := range b.N {
		q.Emplace(func(m *message) {
			m.id = uint64(i)
			m.body[0] = byte(i)
		})
		q.PopInto(&out)
	}
}

// =============================================================================
// Producer/Consumer Throughput
// =============================================================================

// benchmarkTransfer moves b.N elements from a producer goroutine to the
// benchmark goroutine.
func benchmarkTransfer[T any](b *testing.B, q spsc.Queue[T], elem func(i int) T) {
	var wg sync.WaitGroup
	wg.Add(1)

	b.ResetTimer()
	go func() {
		defer wg.Done()
		for i := range b.N {
			q.Push(elem(i))
		}
	}()
	for range b.N {
		q.Pop()
	}
	wg.Wait()
}

func BenchmarkSPSC_Transfer(b *testing.B) {
	if spsc.RaceEnabled {
		b.Skip("skip: slot handoff uses cross-variable memory ordering")
	}
	for _, capacity := range []int{16, 1024, 65536} {
		b.Run(fmt.Sprintf("cap=%d", capacity), func(b *testing.B) {
			q := spsc.Must(spsc.NewSPSC[int](capacity))
			benchmarkTransfer[int](b, q, func(i int) int { return i })
		})
	}
}

func BenchmarkInline_Transfer(b *testing.B) {
	if spsc.RaceEnabled {
		b.Skip("skip: slot handoff uses cross-variable memory ordering")
	}
	q := spsc.Must(spsc.NewInline[int, [1024]int]())
	benchmarkTransfer[int](b, q, func(i int) int { return i })
}

func BenchmarkSentinel_Transfer(b *testing.B) {
	if spsc.RaceEnabled {
		b.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}
	vals := make([]int, 1024)
	for _, capacity := range []int{16, 1024, 65536} {
		b.Run(fmt.Sprintf("cap=%d", capacity), func(b *testing.B) {
			q := spsc.Must(spsc.NewSentinel[int](capacity))
			benchmarkTransfer[*int](b, q, func(i int) *int { return &vals[i&1023] })
		})
	}
}

// BenchmarkChannel_Transfer is the buffered channel baseline.
func BenchmarkChannel_Transfer(b *testing.B) {
	ch := make(chan int, 1024)

	b.ResetTimer()
	go func() {
		for i := range b.N {
			ch <- i
		}
	}()
	for range b.N {
		<-ch
	}
}
