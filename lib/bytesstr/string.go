// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytesstr

import (
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/bureau-foundation/bytesstr/lib/sharedbuf"
)

// String is an immutable UTF-8 string stored in a shared buffer.
//
// The zero value is the empty string. Copying a String copies a small
// header; the bytes are shared. The contents are valid UTF-8 for the
// entire life of every String, and every constructor in this package
// upholds that.
type String struct {
	// bytes is always valid UTF-8.
	bytes sharedbuf.Bytes
}

// Empty returns the empty String. It is identical to the zero value.
func Empty() String {
	return String{}
}

// FromStatic returns a String over the bytes of s without copying or
// allocating. Go strings may hold arbitrary bytes, so s must be valid
// UTF-8; string literals in UTF-8 source files always are. Panics if s
// is not valid UTF-8.
func FromStatic(s string) String {
	if !utf8.ValidString(s) {
		panic(fmt.Sprintf("bytesstr: FromStatic given invalid UTF-8: %q", s))
	}
	return String{bytes: sharedbuf.FromStatic(s)}
}

// FromUTF8Bytes validates buffer and, if it is valid UTF-8, returns a
// String that shares buffer's allocation. Returns an
// [*InvalidEncodingError] describing the first invalid sequence
// otherwise.
func FromUTF8Bytes(buffer sharedbuf.Bytes) (String, error) {
	if err := validate(buffer.Bytes()); err != nil {
		return String{}, err
	}
	return String{bytes: buffer}, nil
}

// MustFromUTF8Bytes is like FromUTF8Bytes but panics on error. Use in
// tests and static initialization where the input is known-valid.
func MustFromUTF8Bytes(buffer sharedbuf.Bytes) String {
	s, err := FromUTF8Bytes(buffer)
	if err != nil {
		panic(fmt.Sprintf("bytesstr.MustFromUTF8Bytes: %v", err))
	}
	return s
}

// FromUTF8BytesUnchecked returns a String that shares buffer's
// allocation without validating it.
//
// The caller guarantees that buffer holds valid UTF-8, typically
// because it was already validated or was produced by an encoder that
// only emits UTF-8. A false guarantee breaks the invariant every other
// method relies on. In checked builds (race detector or the
// bytesstr_checked build tag) and in test binaries the buffer is
// validated regardless and an invalid buffer panics.
func FromUTF8BytesUnchecked(buffer sharedbuf.Bytes) String {
	if verifyUnchecked() {
		if err := validate(buffer.Bytes()); err != nil {
			panic(fmt.Sprintf("bytesstr: FromUTF8BytesUnchecked given invalid UTF-8: %v", err))
		}
	}
	return String{bytes: buffer}
}

// FromString returns a String holding a copy of s in a fresh
// allocation. Panics if s is not valid UTF-8; use [FromText] for input
// of unknown encoding.
func FromString(s string) String {
	if !utf8.ValidString(s) {
		panic(fmt.Sprintf("bytesstr: FromString given invalid UTF-8: %q", s))
	}
	return String{bytes: sharedbuf.CopyFromString(s)}
}

// FromText copies text into a fresh allocation and returns it as a
// String. Later changes to text do not affect the result. Returns an
// [*InvalidEncodingError] if text is not valid UTF-8.
func FromText(text []byte) (String, error) {
	if err := validate(text); err != nil {
		return String{}, err
	}
	return String{bytes: sharedbuf.CopyFrom(text)}, nil
}

// FromParse returns a String covering subset, which must be a substring
// whose memory lies inside buffer: for example, a field a parser found
// by slicing a zero-copy string view of the buffer. The result shares
// buffer's allocation. The covered bytes are validated, which costs one
// scan of subset.
//
// Panics if a non-empty subset does not point into buffer, or if it is
// not valid UTF-8. An empty subset yields the empty String.
func FromParse(buffer sharedbuf.Bytes, subset string) String {
	sliced := buffer.SliceRefString(subset)
	// A Go string carries no encoding guarantee, and buffer itself may
	// not have been validated, so the covered bytes are scanned here.
	if err := validate(sliced.Bytes()); err != nil {
		panic(fmt.Sprintf("bytesstr: FromParse subset is not valid UTF-8: %v", err))
	}
	return String{bytes: sliced}
}

// SliceRef returns the String covering subset, which must be a
// substring of s.String() (or of any text view sharing s's memory).
// The result shares s's allocation. Panics if a non-empty subset does
// not lie within s.
func (s String) SliceRef(subset string) String {
	sliced := s.bytes.SliceRefString(subset)
	if sliced.IsEmpty() {
		return String{}
	}
	// s is valid UTF-8, so only the two cut points need checking:
	// byte-slicing a Go string can split a rune.
	text := s.String()
	start := offsetWithin(s.bytes, sliced)
	if !isBoundary(text, start) || !isBoundary(text, start+sliced.Len()) {
		panic(fmt.Sprintf("bytesstr: SliceRef subset %q does not fall on rune boundaries", subset))
	}
	return String{bytes: sliced}
}

// Slice returns the String holding bytes [low, high) of s, sharing s's
// allocation. Panics if the bounds are out of range or either bound
// splits a multi-byte rune.
func (s String) Slice(low, high int) String {
	text := s.String()
	if low < 0 || low > high || high > len(text) {
		panic(fmt.Sprintf("bytesstr: slice bounds [%d:%d] out of range for length %d", low, high, len(text)))
	}
	if !isBoundary(text, low) || !isBoundary(text, high) {
		panic(fmt.Sprintf("bytesstr: slice bounds [%d:%d] do not fall on rune boundaries of %q", low, high, text))
	}
	return String{bytes: s.bytes.Slice(low, high)}
}

// Detach returns a String with the same contents as s in a fresh
// allocation that shares nothing with s. Use it to keep a small value
// without pinning a large parent buffer in memory.
func (s String) Detach() String {
	return String{bytes: s.bytes.Clone()}
}

// String returns the contents as a Go string without copying. The
// result aliases the shared buffer, which is never modified, so it is
// safe to retain and to use as a map key.
func (s String) String() string {
	view := s.bytes.Bytes()
	if len(view) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(view), len(view))
}

// Bytes returns the contents as a byte slice without copying. The slice
// aliases the shared buffer and must not be modified: a write through
// it changes every String sharing the buffer and voids the guarantee
// that their contents are valid UTF-8.
func (s String) Bytes() []byte {
	return s.bytes.Bytes()
}

// Buffer returns the shared buffer holding s.
func (s String) Buffer() sharedbuf.Bytes {
	return s.bytes
}

// Len returns the length of s in bytes.
func (s String) Len() int { return s.bytes.Len() }

// IsEmpty reports whether s is the empty string.
func (s String) IsEmpty() bool { return s.bytes.IsEmpty() }

// IsZero reports whether s is the zero value. Every empty String is the
// zero value, so this matches IsEmpty; it exists for the omitzero and
// omitempty options of encoding/json and gopkg.in/yaml.v3.
func (s String) IsZero() bool { return s.bytes.IsEmpty() }

// SameAllocation reports whether s and other share a backing
// allocation. Empty strings share nothing.
func (s String) SameAllocation(other String) bool {
	return s.bytes.SameAllocation(other.bytes)
}

// isBoundary reports whether index is 0, len(text), or the first byte
// of an encoded rune.
func isBoundary(text string, index int) bool {
	if index == 0 || index == len(text) {
		return true
	}
	return utf8.RuneStart(text[index])
}

// offsetWithin returns the byte offset of child's view inside
// parent's. child must have been produced by slicing parent.
func offsetWithin(parent, child sharedbuf.Bytes) int {
	parentStart := uintptr(unsafe.Pointer(unsafe.SliceData(parent.Bytes())))
	childStart := uintptr(unsafe.Pointer(unsafe.SliceData(child.Bytes())))
	return int(childStart - parentStart)
}
