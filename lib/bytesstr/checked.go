// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytesstr

import "testing"

// verifyUnchecked reports whether FromUTF8BytesUnchecked validates its
// input: always in checked builds, and in any test binary so that a
// plain "go test" catches false attestations.
func verifyUnchecked() bool {
	return checkedBuild || testing.Testing()
}
