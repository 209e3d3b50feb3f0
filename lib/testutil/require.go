// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import "fmt"

// RequirePanic calls fn and fails the test unless it panics. Returns
// the panic value formatted with fmt.Sprint so callers can check the
// message.
//
//	message := testutil.RequirePanic(t, func() { buffer.Slice(4, 2) }, "inverted bounds")
func RequirePanic(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, fn func(), msgAndArgs ...any) (message string) {
	t.Helper()
	panicked := true
	func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				message = fmt.Sprint(recovered)
			}
		}()
		fn()
		panicked = false
	}()
	if !panicked {
		t.Fatalf("expected panic, got none: %s", formatMessage(msgAndArgs))
	}
	return message
}

// formatMessage formats optional message arguments into a string.
// Accepts either a single string or a format string followed by args.
func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "(no message)"
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs)
}
