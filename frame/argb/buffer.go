// Package argb provides a 32 bits per pixel frame buffer backed by memory outside of the Go heap.
//
// A Buffer owns exactly one block of Width*Height*4 bytes from allocation until Release.
// Pixels are stored row-major as 32-bit words in host byte order; the top byte of each
// word is the alpha channel. A Buffer must not be used from several goroutines without
// external locking. Only Release is safe to race: the block is freed exactly once.
package argb

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/ugparu/mfcore"
	"github.com/ugparu/mfcore/utils"
	"github.com/ugparu/mfcore/utils/buffer"
	"github.com/ugparu/mfcore/utils/lifecycle"
	"github.com/ugparu/mfcore/utils/logger"
)

const (
	// BytesPerPixel is the size of one pixel word.
	BytesPerPixel = 4
	// AlphaMask selects the alpha channel of a pixel word.
	AlphaMask uint32 = 0xFF000000
)

type options struct {
	alloc buffer.Allocator
}

// Option configures New.
type Option func(*options)

// WithAllocator selects where the pixel memory comes from. The default is buffer.Unmanaged.
func WithAllocator(alloc buffer.Allocator) Option {
	return func(o *options) {
		o.alloc = alloc
	}
}

// Buffer is a width x height 32bpp pixel buffer.
type Buffer struct {
	mem    buffer.PooledBuffer
	pix    []byte
	width  int
	height int
	once   lifecycle.Once
}

// New allocates a buffer of width*height pixels. The initial content is undefined.
func New(width, height int, opts ...Option) (*Buffer, error) {
	if width < 0 {
		return nil, utils.InvalidArgumentError{Arg: "width", Reason: fmt.Sprintf("negative value %d", width)}
	}
	if height < 0 {
		return nil, utils.InvalidArgumentError{Arg: "height", Reason: fmt.Sprintf("negative value %d", height)}
	}
	size, ok := sizeInBytes(width, height)
	if !ok {
		return nil, utils.AllocationFailureError{Err: fmt.Errorf("%dx%d pixels overflow the address space", width, height)}
	}

	o := options{alloc: buffer.Unmanaged}
	for _, opt := range opts {
		opt(&o)
	}

	mem, err := o.alloc(size)
	if err != nil {
		var allocErr utils.AllocationFailureError
		if !errors.As(err, &allocErr) {
			err = utils.AllocationFailureError{Size: size, Err: err}
		}
		return nil, err
	}
	if mem.Len() != size {
		got := mem.Len()
		mem.Release()
		return nil, utils.AllocationFailureError{Size: size, Err: fmt.Errorf("allocator returned %d bytes", got)}
	}

	b := &Buffer{
		mem:    mem,
		pix:    mem.Data(),
		width:  width,
		height: height,
	}
	logger.Debugf(b, "allocated %d bytes", size)
	return b, nil
}

func sizeInBytes(width, height int) (int, bool) {
	if width == 0 || height == 0 {
		return 0, true
	}
	if width > math.MaxInt/BytesPerPixel/height {
		return 0, false
	}
	return width * height * BytesPerPixel, true
}

func (b *Buffer) String() string {
	return fmt.Sprintf("argb.Buffer(%dx%d)", b.width, b.height)
}

// Width returns the width in pixels, 0 after Release.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height in pixels, 0 after Release.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the width and height as a point.
func (b *Buffer) Size() image.Point {
	return image.Pt(b.width, b.height)
}

// PixelCount returns width*height.
func (b *Buffer) PixelCount() int {
	return b.width * b.height
}

// SizeInBytes returns width*height*4.
func (b *Buffer) SizeInBytes() int {
	return b.PixelCount() * BytesPerPixel
}

// Stride returns the number of bytes of one row.
func (b *Buffer) Stride() int {
	return b.width * BytesPerPixel
}

// Pitch is Stride under the name the native framework uses.
func (b *Buffer) Pitch() int {
	return b.Stride()
}

// Released reports whether Release has been called.
func (b *Buffer) Released() bool {
	return b.once.Released()
}

func (b *Buffer) disposedError() error {
	return utils.DisposedError{Object: "argb.Buffer"}
}

// offset validates (x, y) and returns the byte offset of its pixel word.
func (b *Buffer) offset(x, y int) (int, error) {
	if b.once.Released() {
		return 0, b.disposedError()
	}
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, utils.OutOfBoundsError{X: x, Y: y, Width: b.width, Height: b.height}
	}
	return (x + y*b.width) * BytesPerPixel, nil
}

// Pixel returns the raw pixel word at (x, y) as stored in memory.
func (b *Buffer) Pixel(x, y int) (int32, error) {
	off, err := b.offset(x, y)
	if err != nil {
		return 0, err
	}
	return int32(loadWord(b.pix[off:])), nil //nolint:gosec // raw word
}

// SetPixel stores the raw pixel word v at (x, y).
func (b *Buffer) SetPixel(x, y int, v int32) error {
	off, err := b.offset(x, y)
	if err != nil {
		return err
	}
	storeWord(b.pix[off:], uint32(v)) //nolint:gosec // raw word
	return nil
}

// SetAlphaOpaque forces the alpha channel of every pixel to 0xFF and keeps the colour bytes.
func (b *Buffer) SetAlphaOpaque() error {
	if b.once.Released() {
		return b.disposedError()
	}
	pix := b.pix
	for i := alphaOffset; i < len(pix); i += BytesPerPixel {
		pix[i] = 0xFF
	}
	return nil
}

// FillFrom copies data to the start of the buffer and zeroes the bytes data does not cover.
func (b *Buffer) FillFrom(data []byte) error {
	if b.once.Released() {
		return b.disposedError()
	}
	if len(data) > len(b.pix) {
		logger.Warningf(b, "fill with %d bytes rejected", len(data))
		return utils.SizeMismatchError{Got: len(data), Capacity: len(b.pix)}
	}
	n := copy(b.pix, data)
	clear(b.pix[n:])
	return nil
}

// CopyFrom fills the buffer with the latest frame of src. The source must produce
// 32bpp frames of the buffer's size.
func (b *Buffer) CopyFrom(src mfcore.FrameSource) error {
	if b.once.Released() {
		return b.disposedError()
	}
	if pf := src.PixelFormat(); pf != mfcore.RGB32 && pf != mfcore.ARGB32 {
		return utils.InvalidArgumentError{Arg: "src", Reason: fmt.Sprintf("pixel format %s is not 32bpp", pf)}
	}
	if size := src.Size(); size != b.Size() {
		return utils.SizeMismatchError{Got: mfcore.ARGB32.FrameSize(size.X, size.Y), Capacity: len(b.pix)}
	}

	n, err := src.CopyFrameTo(b.pix)
	if err != nil {
		return fmt.Errorf("copy frame: %w", err)
	}
	clear(b.pix[n:])
	return nil
}

// CopyTo hands the buffer content to sink without copying it.
func (b *Buffer) CopyTo(sink mfcore.FrameSink) error {
	if b.once.Released() {
		return b.disposedError()
	}
	return sink.WriteFrame(b.pix, b.Stride())
}

// Bytes returns a copy of the whole buffer.
func (b *Buffer) Bytes() ([]byte, error) {
	if b.once.Released() {
		return nil, b.disposedError()
	}
	out := make([]byte, len(b.pix))
	copy(out, b.pix)
	return out, nil
}

// Data returns the owned memory block itself. It is valid until Release.
func (b *Buffer) Data() ([]byte, error) {
	if b.once.Released() {
		return nil, b.disposedError()
	}
	return b.pix, nil
}

// Clone returns a new buffer with the same size and content.
func (b *Buffer) Clone(opts ...Option) (*Buffer, error) {
	if b.once.Released() {
		return nil, b.disposedError()
	}
	c, err := New(b.width, b.height, opts...)
	if err != nil {
		return nil, err
	}
	copy(c.pix, b.pix)
	return c, nil
}

// Release frees the memory block. Further calls are no-ops.
func (b *Buffer) Release() {
	b.once.Do(func() {
		logger.Debugf(b, "releasing %d bytes", len(b.pix))
		b.mem.Release()
		b.mem = nil
		b.pix = nil
		b.width = 0
		b.height = 0
	})
}

// Close releases the buffer and always returns nil.
func (b *Buffer) Close() error {
	b.Release()
	return nil
}
