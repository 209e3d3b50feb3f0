// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sharedbuf provides [Bytes], an immutable byte buffer that many
// independent views may share without copying.
//
// A Bytes value is a window (offset and length) onto a backing array.
// Slicing a Bytes produces a new window onto the same array, so protocol
// parsers can hand out any number of overlapping views of one input
// allocation. The garbage collector keeps the array alive for as long as
// any view references it; there is no explicit release.
//
// Constructors:
//
//   - [FromStatic] -- wraps string memory, no copy, no allocation
//   - [CopyFrom], [CopyFromString] -- copies into a fresh allocation
//   - [Wrap] -- takes ownership of a caller's slice without copying
//
// Nothing in this package ever writes to a backing array after
// construction. [Bytes.Bytes] returns a capacity-clipped slice so that
// append on the result reallocates instead of scribbling over memory
// other views can see. Callers that obtain a slice through Bytes (or
// hand one to Wrap) must treat it as read-only.
//
// Slicing with bounds or sub-slices that do not belong to the buffer is
// a programming error and panics. See [Bytes.SliceRef].
//
// This package has no Bureau-internal dependencies.
package sharedbuf
