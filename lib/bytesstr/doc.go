// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bytesstr provides [String], an immutable UTF-8 string backed by
// a [sharedbuf.Bytes] buffer.
//
// A String is a cheap-to-copy handle onto shared bytes that are
// guaranteed to be valid UTF-8. Parsers that read a message into one
// buffer can hand out many String views of its fields without copying:
// [FromParse] and [String.SliceRef] turn a substring located inside the
// buffer back into a String that shares the buffer's allocation.
//
// Constructors:
//
//   - [Empty] and the zero value -- the empty string, no allocation
//   - [FromStatic] -- wraps a literal without copying
//   - [FromUTF8Bytes] -- validates a shared buffer once, then wraps it
//   - [FromUTF8BytesUnchecked] -- wraps a buffer the caller vouches for
//   - [FromString], [FromText] -- copy into a fresh allocation
//   - [FromParse] -- zero-copy view of a substring inside a buffer
//
// Two failure regimes are kept apart. Bytes that arrive from outside the
// program and are not valid UTF-8 produce an [*InvalidEncodingError],
// which callers handle like any other input error. Misusing the API
// (passing a substring that does not live inside the source buffer,
// slicing off a rune boundary, or lying to FromUTF8BytesUnchecked in a
// checked build) panics.
//
// # Checked builds
//
// FromUTF8BytesUnchecked skips validation in normal builds. Builds with
// the race detector enabled, builds with -tags bytesstr_checked, and
// every test binary validate anyway and panic on invalid input so that a false attestation is
// caught in development instead of corrupting the UTF-8 invariant.
//
// # Comparison and hashing
//
// String is not comparable with ==; use [String.Equal] (or
// [String.EqualString], [String.EqualBytes]) and [String.Compare]. All
// comparisons look only at content, never at which allocation holds it.
// The text returned by [String.String] shares memory with the String
// and is a valid map key. [String.Sum256] returns a BLAKE3 content
// digest.
//
// # Serialization
//
// String implements encoding.TextMarshaler and TextUnmarshaler (which
// also covers encoding/json and lib/codec's CBOR mode) and the
// gopkg.in/yaml.v3 Marshaler and Unmarshaler interfaces. It always
// encodes as a plain text value. Decoding copies the input. For a
// zero-copy CBOR decode straight out of a shared buffer see
// codec.DecodeString.
package bytesstr
