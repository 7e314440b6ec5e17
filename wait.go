// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"context"

	"code.hybscloud.com/iox"
)

// Send adds elem to q, backing off while q is full, until ctx is done.
//
// Unlike Push, which only spins, Send yields and sleeps between attempts
// with [iox.Backoff], trading latency for CPU when the consumer is slow.
// It returns ctx.Err() if ctx ends first, and ErrStopped if q is a
// [Stopper] that has been stopped.
func Send[T any](ctx context.Context, q Producer[T], elem T) error {
	s, stoppable := q.(Stopper)
	backoff := iox.Backoff{}
	for !q.TryPush(elem) {
		if stoppable && s.Stopped() {
			return ErrStopped
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		backoff.Wait()
	}
	return nil
}

// Receive removes and returns the oldest element of q, backing off while
// q is empty, until ctx is done.
//
// It returns ctx.Err() if ctx ends first, and ErrStopped once a [Stopper]
// queue has been drained.
func Receive[T any](ctx context.Context, q Consumer[T]) (T, error) {
	s, stoppable := q.(Stopper)
	backoff := iox.Backoff{}
	for {
		if elem, ok := q.TryPop(); ok {
			return elem, nil
		}
		if stoppable && s.Drained() {
			var zero T
			return zero, ErrStopped
		}
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		backoff.Wait()
	}
}
