// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sharedbuf

import (
	"bytes"
	"fmt"
	"io"
	"unsafe"
)

// Bytes is an immutable view onto a shared backing array. The zero
// value is an empty buffer that references no allocation.
//
// Bytes is a small value type: pass and store it by value. Copies of a
// Bytes, and every buffer produced by slicing it, share the backing
// array. Because the array is never written after construction, a
// Bytes is safe for concurrent use by multiple goroutines.
type Bytes struct {
	// base is the whole backing array, clipped to its length. Every
	// view derived from one constructor call carries the same base.
	base   []byte
	offset int
	length int
}

// FromStatic returns a buffer over the memory of s without copying.
// Go strings are immutable, so the result is valid for as long as it
// is referenced. Intended for string literals and other long-lived
// text.
func FromStatic(s string) Bytes {
	if len(s) == 0 {
		return Bytes{}
	}
	return Bytes{
		base:   unsafe.Slice(unsafe.StringData(s), len(s)),
		length: len(s),
	}
}

// CopyFrom returns a buffer holding a copy of data in a fresh
// allocation. Later writes to data do not affect the buffer.
func CopyFrom(data []byte) Bytes {
	if len(data) == 0 {
		return Bytes{}
	}
	return Wrap(bytes.Clone(data))
}

// CopyFromString returns a buffer holding a copy of s in a fresh
// allocation.
func CopyFromString(s string) Bytes {
	if len(s) == 0 {
		return Bytes{}
	}
	return Wrap([]byte(s))
}

// Wrap returns a buffer that takes ownership of data without copying.
// The caller must not modify data (or any slice aliasing it) after the
// call: other views of the buffer would observe the change.
func Wrap(data []byte) Bytes {
	if len(data) == 0 {
		return Bytes{}
	}
	return Bytes{
		base:   data[:len(data):len(data)],
		length: len(data),
	}
}

// Len returns the number of bytes in the view.
func (b Bytes) Len() int { return b.length }

// IsEmpty reports whether the view holds zero bytes.
func (b Bytes) IsEmpty() bool { return b.length == 0 }

// Bytes returns the contents of the view. The slice aliases the shared
// backing array and must not be modified: every view of the allocation
// would observe the write, including strings that were validated as
// UTF-8 before it. Its capacity equals its length, so appending to it
// always reallocates.
func (b Bytes) Bytes() []byte {
	end := b.offset + b.length
	return b.base[b.offset:end:end]
}

// Slice returns the view of bytes [low, high) of b, sharing b's
// backing array. Panics if the bounds are out of range, matching the
// behavior of a Go slice expression. An empty result references no
// allocation.
func (b Bytes) Slice(low, high int) Bytes {
	if low < 0 || low > high || high > b.length {
		panic(fmt.Sprintf("sharedbuf: slice bounds [%d:%d] out of range for length %d", low, high, b.length))
	}
	if low == high {
		return Bytes{}
	}
	return Bytes{
		base:   b.base,
		offset: b.offset + low,
		length: high - low,
	}
}

// SliceRef returns the view of b that covers exactly subset, which
// must be a sub-slice of b.Bytes() (for example, a token a parser
// located inside the buffer). No bytes are copied.
//
// An empty subset yields an empty buffer regardless of where it
// points. Panics if a non-empty subset does not lie entirely within
// b's view: that is a caller bug, not a data error.
func (b Bytes) SliceRef(subset []byte) Bytes {
	if len(subset) == 0 {
		return Bytes{}
	}
	return b.sliceRef(unsafe.Pointer(unsafe.SliceData(subset)), len(subset))
}

// SliceRefString is SliceRef for a string whose memory lies within b,
// such as one returned by a zero-copy conversion of b.Bytes().
func (b Bytes) SliceRefString(subset string) Bytes {
	if len(subset) == 0 {
		return Bytes{}
	}
	return b.sliceRef(unsafe.Pointer(unsafe.StringData(subset)), len(subset))
}

func (b Bytes) sliceRef(pointer unsafe.Pointer, length int) Bytes {
	view := b.Bytes()
	if len(view) == 0 {
		panic(fmt.Sprintf("sharedbuf: subset %p (length %d) is not within an empty buffer", pointer, length))
	}

	viewStart := uintptr(unsafe.Pointer(unsafe.SliceData(view)))
	viewEnd := viewStart + uintptr(len(view))
	subsetStart := uintptr(pointer)
	subsetEnd := subsetStart + uintptr(length)

	if subsetStart < viewStart || subsetEnd > viewEnd || subsetEnd < subsetStart {
		panic(fmt.Sprintf("sharedbuf: subset [%#x, %#x) is not within buffer [%#x, %#x)",
			subsetStart, subsetEnd, viewStart, viewEnd))
	}

	offset := int(subsetStart - viewStart)
	return b.Slice(offset, offset+length)
}

// SameAllocation reports whether b and other are views of the same
// backing array. Buffers built by separate constructor calls never
// share an allocation; empty buffers share nothing.
func (b Bytes) SameAllocation(other Bytes) bool {
	if len(b.base) == 0 || len(other.base) == 0 {
		return false
	}
	return unsafe.SliceData(b.base) == unsafe.SliceData(other.base)
}

// Clone returns a buffer with the same contents as b in a fresh,
// independent allocation.
func (b Bytes) Clone() Bytes {
	return CopyFrom(b.Bytes())
}

// Equal reports whether b and other hold the same bytes. Allocation
// identity is irrelevant.
func (b Bytes) Equal(other Bytes) bool {
	return bytes.Equal(b.Bytes(), other.Bytes())
}

// Compare returns an integer comparing b and other lexicographically:
// 0 if equal, -1 if b sorts first, +1 otherwise.
func (b Bytes) Compare(other Bytes) int {
	return bytes.Compare(b.Bytes(), other.Bytes())
}

// WriteTo implements io.WriterTo, writing the view without an
// intermediate copy.
func (b Bytes) WriteTo(w io.Writer) (int64, error) {
	written, err := w.Write(b.Bytes())
	return int64(written), err
}
