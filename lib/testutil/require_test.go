// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

// recordingT captures Fatalf calls without stopping the test.
type recordingT struct {
	failed  bool
	message string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Fatalf(format string, args ...any) {
	r.failed = true
	r.message = fmt.Sprintf(format, args...)
}

func TestRequirePanicReturnsMessage(t *testing.T) {
	recorder := &recordingT{}
	message := RequirePanic(recorder, func() { panic("sharedbuf: out of range") })
	if recorder.failed {
		t.Fatalf("RequirePanic failed on a panicking function: %s", recorder.message)
	}
	if message != "sharedbuf: out of range" {
		t.Errorf("message = %q, want %q", message, "sharedbuf: out of range")
	}
}

func TestRequirePanicFormatsErrors(t *testing.T) {
	message := RequirePanic(t, func() { panic(errors.New("boom")) })
	if message != "boom" {
		t.Errorf("message = %q, want %q", message, "boom")
	}
}

func TestRequirePanicFailsWithoutPanic(t *testing.T) {
	recorder := &recordingT{}
	RequirePanic(recorder, func() {}, "slicing %s", "abc")
	if !recorder.failed {
		t.Fatal("RequirePanic did not fail for a function that returned normally")
	}
	if recorder.message != "expected panic, got none: slicing abc" {
		t.Errorf("failure message = %q", recorder.message)
	}
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "input.txt", []byte("content"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back %s: %v", path, err)
	}
	if string(data) != "content" {
		t.Errorf("file holds %q, want %q", data, "content")
	}
}
