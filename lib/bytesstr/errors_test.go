// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytesstr

import (
	"errors"
	"testing"

	"github.com/bureau-foundation/bytesstr/lib/sharedbuf"
)

func TestFromUTF8BytesRejects(t *testing.T) {
	tests := []struct {
		name          string
		input         []byte
		wantOffset    int
		wantTruncated bool
	}{
		{"FF FE", []byte{0xFF, 0xFE}, 0, false},
		{"bad byte after ascii", []byte("abc\xff"), 3, false},
		{"lone continuation byte", []byte("a\x80b"), 1, false},
		{"bad continuation", []byte("a\xe2\x82z"), 1, false},
		{"overlong encoding", []byte("\xc0\xaf"), 0, false},
		{"UTF-16 surrogate", []byte("ok\xed\xa0\x80"), 2, false},
		{"beyond U+10FFFF", []byte("\xf4\x90\x80\x80"), 0, false},
		{"truncated two-byte", []byte("héllo\xc3"), 6, true},
		{"truncated three-byte", []byte("\xe2\x82"), 0, true},
		{"truncated four-byte", []byte("x\xf0\x9f\x8e"), 1, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, err := FromUTF8Bytes(sharedbuf.CopyFrom(test.input))
			if err == nil {
				t.Fatalf("FromUTF8Bytes(%q) = %q, want error", test.input, value)
			}
			if !value.IsEmpty() {
				t.Errorf("failed FromUTF8Bytes returned a non-empty value %q", value)
			}
			if !errors.Is(err, ErrInvalidEncoding) {
				t.Errorf("errors.Is(%v, ErrInvalidEncoding) = false", err)
			}

			var encodingError *InvalidEncodingError
			if !errors.As(err, &encodingError) {
				t.Fatalf("error %v is not an *InvalidEncodingError", err)
			}
			if encodingError.Offset != test.wantOffset {
				t.Errorf("Offset = %d, want %d", encodingError.Offset, test.wantOffset)
			}
			if encodingError.Truncated != test.wantTruncated {
				t.Errorf("Truncated = %v, want %v", encodingError.Truncated, test.wantTruncated)
			}

			// FromText applies the same validation.
			if _, err := FromText(test.input); !errors.Is(err, ErrInvalidEncoding) {
				t.Errorf("FromText(%q) error = %v, want ErrInvalidEncoding", test.input, err)
			}
		})
	}
}

func TestInvalidEncodingErrorMessage(t *testing.T) {
	tests := []struct {
		err  *InvalidEncodingError
		want string
	}{
		{&InvalidEncodingError{Offset: 0}, "bytesstr: invalid UTF-8 at byte offset 0"},
		{&InvalidEncodingError{Offset: 6, Truncated: true}, "bytesstr: truncated UTF-8 sequence at byte offset 6"},
	}
	for _, test := range tests {
		if got := test.err.Error(); got != test.want {
			t.Errorf("Error() = %q, want %q", got, test.want)
		}
	}
}

func TestValidateAcceptsValid(t *testing.T) {
	for _, input := range []string{"", "a", "é", "€", "\U0001F389", "�"} {
		if err := validate([]byte(input)); err != nil {
			t.Errorf("validate(%q) = %v, want nil", input, err)
		}
	}
}
