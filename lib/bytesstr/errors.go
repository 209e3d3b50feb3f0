// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytesstr

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidEncoding matches every [*InvalidEncodingError] under
// errors.Is.
var ErrInvalidEncoding = errors.New("bytesstr: invalid UTF-8")

// InvalidEncodingError reports input that is not valid UTF-8. It is a
// data error: the bytes came from outside the program and the caller
// should reject them.
type InvalidEncodingError struct {
	// Offset is the byte offset of the first invalid sequence. Every
	// byte before Offset is valid UTF-8.
	Offset int

	// Truncated is true when the input ends partway through an
	// otherwise well-formed multi-byte sequence. More input might have
	// completed it.
	Truncated bool
}

func (e *InvalidEncodingError) Error() string {
	if e.Truncated {
		return fmt.Sprintf("bytesstr: truncated UTF-8 sequence at byte offset %d", e.Offset)
	}
	return fmt.Sprintf("bytesstr: invalid UTF-8 at byte offset %d", e.Offset)
}

// Is reports whether target is ErrInvalidEncoding.
func (e *InvalidEncodingError) Is(target error) bool {
	return target == ErrInvalidEncoding
}

// validate returns nil if data is valid UTF-8, or an
// *InvalidEncodingError locating the first bad sequence.
func validate(data []byte) error {
	if utf8.Valid(data) {
		return nil
	}

	offset := 0
	for offset < len(data) {
		if data[offset] < utf8.RuneSelf {
			offset++
			continue
		}
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size == 1 {
			return &InvalidEncodingError{
				Offset:    offset,
				Truncated: !utf8.FullRune(data[offset:]),
			}
		}
		offset += size
	}

	// utf8.Valid and DecodeRune disagree only if the standard library
	// is broken.
	panic("bytesstr: utf8.Valid rejected input that decodes cleanly")
}
