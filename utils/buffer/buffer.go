package buffer

import (
	"sync"

	"github.com/ugparu/mfcore/utils"
)

const (
	defaultBufSize = 64 * 1024        // 64KB, a 128x128 ARGB frame
	bigBufSize     = 8 * 1024 * 1024  // 8MB, a 1920x1080 ARGB frame
	maxBufSize     = 64 * 1024 * 1024 // above this the GC gets the memory back
)

var bufPool = sync.Pool{
	New: func() any {
		return &memBuffer{
			buf: make([]byte, 0, defaultBufSize),
		}
	},
}

var bigBufPool = sync.Pool{
	New: func() any {
		return &memBuffer{
			buf: make([]byte, 0, bigBufSize),
		}
	},
}

// Get takes a buffer of length size from the pool. Previous content is not cleared.
func Get(size int) PooledBuffer {
	var b *memBuffer
	if size >= bigBufSize {
		b = bigBufPool.Get().(*memBuffer)
	} else {
		b = bufPool.Get().(*memBuffer)
	}

	if cap(b.buf) < size {
		b.buf = make([]byte, size)
	}

	b.buf = b.buf[:size]
	return b
}

// Pooled is an Allocator backed by the package pools.
func Pooled(size int) (PooledBuffer, error) {
	if size < 0 {
		return nil, utils.AllocationFailureError{Size: size}
	}
	return Get(size), nil
}

type memBuffer struct {
	buf []byte
}

func (b *memBuffer) Data() []byte {
	return b.buf
}

func (b *memBuffer) Len() int {
	return len(b.buf)
}

func (b *memBuffer) Cap() int {
	return cap(b.buf)
}

// Release returns the buffer to the pool it fits.
func (b *memBuffer) Release() {
	if cap(b.buf) > maxBufSize {
		b.buf = nil
		return
	}

	b.buf = b.buf[:0]
	if cap(b.buf) >= bigBufSize {
		bigBufPool.Put(b)
	} else {
		bufPool.Put(b)
	}
}
