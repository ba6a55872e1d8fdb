package mincache

import (
	"fmt"
	"slices"
)

// buffer is the append-only record log. Bytes are never rewritten once
// allocated, only the end grows.
type buffer struct {
	data []byte
}

func newBuffer(size int64) *buffer {
	return &buffer{
		data: make([]byte, 0, size),
	}
}

// Alloc extends the buffer by length bytes and returns the new region for
// the caller to fill.
func (buf *buffer) Alloc(length uint64) []byte {
	off := len(buf.data)
	buf.data = slices.Grow(buf.data, int(length))
	buf.data = buf.data[:off+int(length)]
	return buf.data[off:]
}

// Slice returns buf[start:end]. The range comes from the index, so a range
// outside the buffer is a broken invariant and panics.
func (buf *buffer) Slice(start, end uint64) []byte {
	if buf.overflow(start, end) {
		panic(fmt.Sprintf("mincache: range [%d, %d) out of buffer of %d bytes", start, end, len(buf.data)))
	}
	return buf.data[start:end]
}

func (buf *buffer) Len() uint64 {
	return uint64(len(buf.data))
}

func (buf *buffer) overflow(start, end uint64) bool {
	return start > end || end > uint64(len(buf.data))
}
