// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package textsource loads whole inputs (files or stdin) into a
// [sharedbuf.Bytes], transparently decompressing zstd, LZ4 frame, and
// gzip streams.
//
// The result is a single allocation that callers validate with
// bytesstr.FromUTF8Bytes and then slice into as many zero-copy views as
// they need. [Load] and [Read] enforce a size limit on both the raw and
// the decompressed input so that a small compressed file cannot expand
// without bound.
package textsource
