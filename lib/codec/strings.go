// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/bureau-foundation/bytesstr/lib/bytesstr"
	"github.com/bureau-foundation/bytesstr/lib/sharedbuf"
)

// CBOR major type 3 (text string) and the additional-information
// values that select the width of the length argument.
const (
	majorTypeText        = 3
	infoUint8Length      = 24
	infoUint16Length     = 25
	infoUint32Length     = 26
	infoUint64Length     = 27
	infoIndefiniteLength = 31
)

// DecodeString decodes the definite-length CBOR text string at the
// start of src without copying its payload. The returned String is a
// view of src's allocation; the second result is the unread remainder
// of src (the rest of a CBOR sequence).
//
// Only a bare text string is accepted: tagged items, indefinite-length
// strings (whose chunks are not contiguous), and every other major type
// are errors. The payload is validated as UTF-8; invalid text produces
// an error matching bytesstr.ErrInvalidEncoding.
//
// Unmarshal into a *bytesstr.String also works, but copies.
func DecodeString(src sharedbuf.Bytes) (bytesstr.String, sharedbuf.Bytes, error) {
	headLength, payloadLength, err := textStringHead(src.Bytes())
	if err != nil {
		return bytesstr.String{}, sharedbuf.Bytes{}, err
	}

	end := headLength + payloadLength
	value, err := bytesstr.FromUTF8Bytes(src.Slice(headLength, end))
	if err != nil {
		return bytesstr.String{}, sharedbuf.Bytes{}, fmt.Errorf("codec: CBOR text string payload: %w", err)
	}
	return value, src.Slice(end, src.Len()), nil
}

// DecodeStrings decodes a CBOR sequence (RFC 8742) consisting only of
// text strings. Every returned String shares src's allocation.
func DecodeStrings(src sharedbuf.Bytes) ([]bytesstr.String, error) {
	var values []bytesstr.String
	for index := 0; !src.IsEmpty(); index++ {
		value, rest, err := DecodeString(src)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", index, err)
		}
		values = append(values, value)
		src = rest
	}
	return values, nil
}

// textStringHead parses the head of a CBOR text string and returns the
// head's length in bytes and the payload length. Fails if data does
// not start with a complete definite-length text string.
func textStringHead(data []byte) (int, int, error) {
	if len(data) == 0 {
		return 0, 0, fmt.Errorf("codec: reading CBOR text string: %w", io.ErrUnexpectedEOF)
	}

	initial := data[0]
	if major := initial >> 5; major != majorTypeText {
		return 0, 0, fmt.Errorf("codec: expected CBOR text string (major type %d), got major type %d", majorTypeText, major)
	}

	var headLength int
	var length uint64
	switch info := initial & 0x1f; {
	case info < infoUint8Length:
		headLength, length = 1, uint64(info)
	case info == infoUint8Length:
		headLength = 2
	case info == infoUint16Length:
		headLength = 3
	case info == infoUint32Length:
		headLength = 5
	case info == infoUint64Length:
		headLength = 9
	case info == infoIndefiniteLength:
		return 0, 0, fmt.Errorf("codec: indefinite-length CBOR text string cannot be borrowed; use Unmarshal")
	default:
		return 0, 0, fmt.Errorf("codec: malformed CBOR head: reserved additional information %d", info)
	}

	if len(data) < headLength {
		return 0, 0, fmt.Errorf("codec: reading CBOR text string head: %w", io.ErrUnexpectedEOF)
	}
	switch headLength {
	case 2:
		length = uint64(data[1])
	case 3:
		length = uint64(binary.BigEndian.Uint16(data[1:3]))
	case 5:
		length = uint64(binary.BigEndian.Uint32(data[1:5]))
	case 9:
		length = binary.BigEndian.Uint64(data[1:9])
	}

	available := uint64(len(data) - headLength)
	if length > available || length > math.MaxInt {
		return 0, 0, fmt.Errorf("codec: CBOR text string declares %d bytes, %d available: %w",
			length, available, io.ErrUnexpectedEOF)
	}
	return headLength, int(length), nil
}
