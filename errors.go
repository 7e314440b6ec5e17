// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Enqueue: the queue is full (backpressure)
// For Dequeue: the queue is empty (no data available)
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry the operation later (with backoff or yield) rather than propagating
// the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrStopped is returned by the error-style operations of a [Sentinel]
// queue after [Sentinel.Stop]: Enqueue no longer accepts elements, and
// Dequeue reports it once every element accepted before the stop has been
// consumed.
var ErrStopped = errors.New("spsc: queue stopped")

// Configuration errors. They are only ever returned by constructors and
// are wrapped with detail, so match them with [errors.Is].
var (
	// ErrInvalidCapacity reports a non-positive heap capacity.
	ErrInvalidCapacity = errors.New("spsc: capacity must be a positive number")

	// ErrFixedCapacity reports a runtime capacity passed to an inline
	// queue, whose capacity is fixed by its array type.
	ErrFixedCapacity = errors.New("spsc: capacity is fixed by the inline storage type")

	// ErrCapacityOverflow reports a capacity that, with slack and padding
	// slots, exceeds the addressable range.
	ErrCapacityOverflow = errors.New("spsc: capacity with padding overflows")

	// ErrInvalidRingSize reports a sentinel ring whose slot count is not a
	// power of two.
	ErrInvalidRingSize = errors.New("spsc: ring size must be a power of two")

	// ErrElementType reports a storage type that cannot hold the element
	// type.
	ErrElementType = errors.New("spsc: unsupported storage type")

	// ErrInlineTooLarge reports inline storage above MaxInlineBytes.
	ErrInlineTooLarge = errors.New("spsc: inline storage too large")
)

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
