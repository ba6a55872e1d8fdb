package mincache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferAlloc(t *testing.T) {
	buf := newBuffer(4)

	bs := buf.Alloc(3)
	copy(bs, "abc")
	assert.Equal(t, uint64(3), buf.Len())

	// grows past the preallocated size
	bs = buf.Alloc(5)
	copy(bs, "defgh")
	assert.Equal(t, uint64(8), buf.Len())
	assert.Equal(t, []byte("abcdefgh"), buf.Slice(0, 8))
	assert.Equal(t, []byte("cde"), buf.Slice(2, 5))
	assert.Empty(t, buf.Slice(8, 8))
}

func TestBufferSliceOutOfRange(t *testing.T) {
	buf := newBuffer(0)
	copy(buf.Alloc(4), "abcd")

	assert.Panics(t, func() { buf.Slice(0, 5) })
	assert.Panics(t, func() { buf.Slice(3, 2) })
	assert.NotPanics(t, func() { buf.Slice(0, 4) })
}
