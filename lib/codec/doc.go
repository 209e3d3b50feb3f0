// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the module's standard CBOR encoding
// configuration and the zero-copy CBOR decode path for
// [bytesstr.String].
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// Same logical data always produces identical bytes. Both modes route
// encoding.TextMarshaler and TextUnmarshaler through CBOR text
// strings, so a bytesstr.String field encodes exactly like a Go string:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Unmarshal copies string payloads out of the input. When the input
// already lives in a [sharedbuf.Bytes] and the decoded strings should
// keep pointing into it, use [DecodeString] or [DecodeStrings]:
//
//	name, rest, err := codec.DecodeString(buffer)
//
// The borrowed String keeps the whole input buffer alive. Call
// bytesstr.String.Detach on values that outlive the input and are much
// smaller than it.
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
package codec
