// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytesstr

import (
	"slices"
	"testing"

	"github.com/bureau-foundation/bytesstr/lib/sharedbuf"
)

func TestEqualityIsByContent(t *testing.T) {
	static := FromStatic("shared text")
	owned := FromString("shared text")
	validated := MustFromUTF8Bytes(sharedbuf.CopyFromString("shared text"))

	if static.SameAllocation(owned) {
		t.Fatal("independently built strings unexpectedly share an allocation")
	}
	for _, other := range []String{owned, validated, static.Detach()} {
		if !static.Equal(other) || !other.Equal(static) {
			t.Errorf("%q and %q are not Equal", static, other)
		}
		if static.Compare(other) != 0 {
			t.Errorf("Compare(%q, %q) = %d, want 0", static, other, static.Compare(other))
		}
		if static.Sum256() != other.Sum256() {
			t.Errorf("Sum256 differs for equal content %q", other)
		}
	}

	if static.Equal(FromStatic("shared tex")) {
		t.Error("strings of different length compared Equal")
	}
}

func TestEqualStringAndBytes(t *testing.T) {
	value := FromString("mixed")
	if !value.EqualString("mixed") || value.EqualString("Mixed") {
		t.Error("EqualString compares incorrectly")
	}
	if !value.EqualBytes([]byte("mixed")) || value.EqualBytes([]byte("mixe")) {
		t.Error("EqualBytes compares incorrectly")
	}
	if !Empty().EqualBytes(nil) || !Empty().EqualBytes([]byte{}) {
		t.Error("empty String should equal nil and empty byte slices")
	}
}

func TestCompareOrdering(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "b", -1},
		{"b", "a", 1},
		{"", "a", -1},
		{"abc", "ab", 1},
		{"Z", "a", -1},
		// Byte order on UTF-8 is code point order.
		{"z", "é", -1},
		{"é", "€", -1},
		{"€", "🎉", -1},
	}
	for _, test := range tests {
		if got := FromString(test.a).Compare(FromString(test.b)); got != test.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSortWithCompare(t *testing.T) {
	values := []String{FromString("pear"), FromStatic("apple"), FromString("fig")}
	slices.SortFunc(values, Compare)

	want := []string{"apple", "fig", "pear"}
	for index, value := range values {
		if !value.EqualString(want[index]) {
			t.Errorf("sorted[%d] = %q, want %q", index, value, want[index])
		}
	}
}

func TestSum256(t *testing.T) {
	first := FromString("digest me").Sum256()
	second := FromString("digest me!").Sum256()
	if first == second {
		t.Error("different contents produced the same digest")
	}
	if len(first.String()) != 64 {
		t.Errorf("Digest.String() length = %d, want 64", len(first.String()))
	}
	if Empty().Sum256() != (String{}).Sum256() {
		t.Error("empty digests differ")
	}
}

func TestStringAsMapKey(t *testing.T) {
	buffer := sharedbuf.CopyFromString("alpha beta alpha")
	line := MustFromUTF8Bytes(buffer)
	text := line.String()

	counts := make(map[string]int)
	for _, word := range []String{line.SliceRef(text[0:5]), line.SliceRef(text[6:10]), line.SliceRef(text[11:16])} {
		counts[word.String()]++
	}
	if counts["alpha"] != 2 || counts["beta"] != 1 {
		t.Errorf("counts = %v, want alpha:2 beta:1", counts)
	}
}
