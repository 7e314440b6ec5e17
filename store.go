// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// cacheLineSize is the destructive interference size of the target
// architecture as reported by x/sys/cpu (64 bytes where unknown).
const cacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// MaxInlineBytes bounds the storage an [Inline] queue may embed.
const MaxInlineBytes = 2 << 20

// pad is cache line padding to prevent false sharing.
type pad = cpu.CacheLinePad

// noCopy may be embedded into structs which must not be copied after
// first use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// padding returns how many elements of the given size fill one cache line,
// rounded up. Zero-size elements count as one byte.
func padding(elemSize uintptr) int {
	if elemSize == 0 {
		elemSize = 1
	}
	return (cacheLineSize-1)/int(elemSize) + 1
}

// newHeapStore allocates capacity+1 live slots framed by a cache line worth
// of unused slots on each side. The returned offset is the index of the
// first live slot.
func newHeapStore[T any](capacity int) (buf []T, offset int, err error) {
	if capacity < 1 {
		return nil, 0, fmt.Errorf("%w: got %d (heap queues require a capacity)", ErrInvalidCapacity, capacity)
	}

	elemSize := unsafe.Sizeof(*new(T))
	p := padding(elemSize)
	if capacity > math.MaxInt-1-2*p {
		return nil, 0, fmt.Errorf("%w: capacity %d", ErrCapacityOverflow, capacity)
	}
	n := capacity + 1 + 2*p
	if elemSize > 0 && uint64(n) > uint64(math.MaxInt)/uint64(elemSize) {
		return nil, 0, fmt.Errorf("%w: %d slots of %d bytes", ErrCapacityOverflow, n, elemSize)
	}

	return make([]T, n), p, nil
}

// inlineLen validates A as inline storage for T and returns its length.
func inlineLen[T, A any]() (int, error) {
	at, et := reflect.TypeFor[A](), reflect.TypeFor[T]()
	if at.Kind() != reflect.Array || at.Elem() != et {
		return 0, fmt.Errorf("%w: %v is not an array of %v", ErrElementType, at, et)
	}
	if at.Len() < 1 {
		return 0, fmt.Errorf("%w: %v has no slots", ErrInvalidCapacity, at)
	}
	if at.Size() > MaxInlineBytes {
		return 0, fmt.Errorf("%w: %v is %d bytes, limit %d", ErrInlineTooLarge, at, at.Size(), MaxInlineBytes)
	}
	return at.Len(), nil
}

// holdsPointers reports whether values of t reference memory tracked by
// the garbage collector. Slots of such types are cleared when consumed so
// the queue does not keep dequeued objects alive.
func holdsPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && holdsPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if holdsPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
