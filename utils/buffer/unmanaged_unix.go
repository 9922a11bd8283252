//go:build unix

package buffer

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/ugparu/mfcore/utils"
	"github.com/ugparu/mfcore/utils/logger"
)

// unmanagedBuffer is an anonymous private mapping outside of the Go heap.
type unmanagedBuffer struct {
	region []byte
}

// Unmanaged is an Allocator that maps size bytes of anonymous memory.
// The kernel hands out zeroed pages, but callers must not rely on it.
func Unmanaged(size int) (PooledBuffer, error) {
	if size < 0 {
		return nil, utils.AllocationFailureError{Size: size}
	}
	if size == 0 {
		return &unmanagedBuffer{}, nil
	}

	region, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, utils.AllocationFailureError{Size: size, Err: err}
	}
	logger.Tracef("buffer", "mapped %d bytes", size)
	return &unmanagedBuffer{region: region}, nil
}

func (b *unmanagedBuffer) Data() []byte {
	return b.region
}

func (b *unmanagedBuffer) Len() int {
	return len(b.region)
}

func (b *unmanagedBuffer) Cap() int {
	return cap(b.region)
}

// Release unmaps the region. Unmapping a region this package mapped cannot fail
// unless memory is corrupted, so a failure panics.
func (b *unmanagedBuffer) Release() {
	if b.region == nil {
		return
	}
	if err := unix.Munmap(b.region); err != nil {
		panic(fmt.Sprintf("unmanagedBuffer: munmap of %d bytes failed: %v", len(b.region), err))
	}
	b.region = nil
}
