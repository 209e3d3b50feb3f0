// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytesstr

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/zeebo/blake3"
)

// Equal reports whether s and other hold the same bytes. Two Strings
// built independently from equal text are Equal even though they do
// not share an allocation.
func (s String) Equal(other String) bool {
	return s.String() == other.String()
}

// EqualString reports whether s holds exactly the bytes of text.
func (s String) EqualString(text string) bool {
	return s.String() == text
}

// EqualBytes reports whether s holds exactly the bytes of data.
func (s String) EqualBytes(data []byte) bool {
	return bytes.Equal(s.Bytes(), data)
}

// Compare returns an integer comparing s and other lexicographically
// by byte: 0 if equal, -1 if s sorts first, +1 otherwise. Byte order
// on UTF-8 matches code point order.
func (s String) Compare(other String) int {
	return strings.Compare(s.String(), other.String())
}

// Compare is the function form of [String.Compare], suitable for
// slices.SortFunc and friends.
func Compare(a, b String) int {
	return a.Compare(b)
}

// Digest is a 32-byte BLAKE3 digest of a String's content.
type Digest [32]byte

// String returns the lowercase hex encoding of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// contentDomainKey keys the BLAKE3 hash used by Sum256 so that content
// digests cannot collide with digests computed for other purposes
// over the same bytes. ASCII name, zero-padded to 32 bytes.
var contentDomainKey = [32]byte{
	'b', 'u', 'r', 'e', 'a', 'u', '.', 'b', 'y', 't', 'e', 's', 's', 't', 'r', '.',
	'c', 'o', 'n', 't', 'e', 'n', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Sum256 returns the BLAKE3 keyed digest of s's bytes. Equal Strings
// always have equal digests.
func (s String) Sum256() Digest {
	// NewKeyed only fails for a key that is not 32 bytes long.
	hasher, err := blake3.NewKeyed(contentDomainKey[:])
	if err != nil {
		panic("bytesstr: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(s.Bytes())
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}
