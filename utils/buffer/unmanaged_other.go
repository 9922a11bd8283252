//go:build !unix

package buffer

import "github.com/ugparu/mfcore/utils"

// heapBuffer stands in for unmanaged memory on hosts without mmap.
type heapBuffer struct {
	buf []byte
}

// Unmanaged is an Allocator returning a plain heap slice on this platform.
func Unmanaged(size int) (PooledBuffer, error) {
	if size < 0 {
		return nil, utils.AllocationFailureError{Size: size}
	}
	return &heapBuffer{buf: make([]byte, size)}, nil
}

func (b *heapBuffer) Data() []byte {
	return b.buf
}

func (b *heapBuffer) Len() int {
	return len(b.buf)
}

func (b *heapBuffer) Cap() int {
	return cap(b.buf)
}

func (b *heapBuffer) Release() {
	b.buf = nil
}
