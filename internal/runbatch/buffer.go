// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import "bytes"

// boundedBuffer is an io.Writer that retains at most max bytes and silently
// discards the rest, so a runaway tool cannot exhaust memory.
type boundedBuffer struct {
	buf bytes.Buffer
	max int
}

func newBoundedBuffer(max int) *boundedBuffer {
	return &boundedBuffer{max: max}
}

// Write implements io.Writer. It always reports the full length as written
// so the producing process is never blocked or failed by truncation.
func (b *boundedBuffer) Write(p []byte) (int, error) {
	room := b.max - b.buf.Len()
	if room <= 0 {
		return len(p), nil
	}

	if len(p) > room {
		b.buf.Write(p[:room])
		return len(p), nil
	}

	b.buf.Write(p)

	return len(p), nil
}

func (b *boundedBuffer) Bytes() []byte {
	return b.buf.Bytes()
}
