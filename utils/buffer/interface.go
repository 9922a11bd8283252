package buffer

type PooledBuffer interface {
	Data() []byte

	Len() int
	Cap() int

	// Release hands the memory back to its allocator. After calling Release,
	// the buffer should not be used.
	Release()
}

// Allocator returns a buffer of exactly size bytes. The content is undefined.
type Allocator func(size int) (PooledBuffer, error)
