// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the bytesstr command tree.
//
// Every command loads its inputs through lib/textsource, so files may
// be zstd, LZ4, or gzip compressed, and "-" reads stdin. Inputs are
// validated once with [bytesstr.FromUTF8Bytes]; everything after that
// (line splitting, hashing, encoding) works on zero-copy views of the
// loaded buffer.
package commands
