// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/spsc"
)

func TestSendDeadlineOnFull(t *testing.T) {
	q := spsc.Must(spsc.NewSPSC[int](2))
	q.Push(1)
	q.Push(2)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := spsc.Send(ctx, q, 3); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Send on full: got %v, want DeadlineExceeded", err)
	}
	if q.Size() != 2 {
		t.Fatalf("Size: got %d, want 2", q.Size())
	}
}

func TestReceiveDeadlineOnEmpty(t *testing.T) {
	q := spsc.Must(spsc.NewSPSC[int](2))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	v, err := spsc.Receive[int](ctx, q)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Receive on empty: got %v, want DeadlineExceeded", err)
	}
	if v != 0 {
		t.Fatalf("Receive on empty: got %d, want zero value", v)
	}
}

func TestSendReceiveCanceled(t *testing.T) {
	q := spsc.Must(spsc.NewSentinel[int](1))
	v := 1
	q.Push(&v)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := spsc.Send(ctx, q, &v); !errors.Is(err, context.Canceled) {
		t.Fatalf("Send: got %v, want Canceled", err)
	}
	// An available element is returned even with a done context.
	got, err := spsc.Receive[*int](ctx, q)
	if err != nil || got != &v {
		t.Fatalf("Receive: got (%v, %v), want (%p, nil)", got, err, &v)
	}
	if _, err := spsc.Receive[*int](ctx, q); !errors.Is(err, context.Canceled) {
		t.Fatalf("Receive on empty: got %v, want Canceled", err)
	}
}

func TestSendReceiveStopped(t *testing.T) {
	q := spsc.Must(spsc.NewSentinel[int](4))
	vals := values(2)
	ctx := context.Background()

	if err := spsc.Send(ctx, q, vals[0]); err != nil {
		t.Fatalf("Send: %v", err)
	}
	q.Stop()

	if err := spsc.Send(ctx, q, vals[1]); !errors.Is(err, spsc.ErrStopped) {
		t.Fatalf("Send after Stop: got %v, want ErrStopped", err)
	}
	got, err := spsc.Receive[*int](ctx, q)
	if err != nil || got != vals[0] {
		t.Fatalf("Receive: got (%v, %v), want (%p, nil)", got, err, vals[0])
	}
	if _, err := spsc.Receive[*int](ctx, q); !errors.Is(err, spsc.ErrStopped) {
		t.Fatalf("Receive after drain: got %v, want ErrStopped", err)
	}
}

// TestSendReceivePipeline runs a sentinel stream through Send and Receive
// until the producer stops it.
func TestSendReceivePipeline(t *testing.T) {
	if spsc.RaceEnabled {
		t.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}
	const n = 10_000
	q := spsc.Must(spsc.NewSentinel[int](16))
	vals := values(n)

	ctx, cancel := context.WithTimeout(context.Background(), stressTimeout)
	defer cancel()

	var wg sync.WaitGroup
	var sendErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, v := range vals {
			if sendErr = spsc.Send(ctx, q, v); sendErr != nil {
				return
			}
		}
		q.Stop()
	}()

	received := 0
	for {
		v, err := spsc.Receive[*int](ctx, q)
		if errors.Is(err, spsc.ErrStopped) {
			break
		}
		if err != nil {
			t.Fatalf("Receive(%d): %v", received, err)
		}
		if *v != received {
			t.Fatalf("Receive: got %d, want %d", *v, received)
		}
		received++
	}
	wg.Wait()

	if sendErr != nil {
		t.Fatalf("Send: %v", sendErr)
	}
	if received != n {
		t.Fatalf("received: got %d, want %d", received, n)
	}
}
