// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build race || bytesstr_checked

package bytesstr

// checkedBuild enables validation inside FromUTF8BytesUnchecked.
const checkedBuild = true
