// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for bytesstr packages.
//
//   - [RequirePanic] runs a function that must panic and returns the
//     panic message, for the contract-violation paths of sharedbuf and
//     bytesstr.
//   - [WriteFile] creates a file in a per-test temporary directory,
//     for tests of code that loads inputs from disk.
package testutil
