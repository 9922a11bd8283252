// Package mfcore holds the vocabulary shared by the binary codec and the pixel buffer
// used to exchange frames with the native media framework.
package mfcore

import "image"

// FrameSource defines a producer of raw frames, typically a sensor colour stream.
type FrameSource interface {
	PixelFormat() PixelFormat            // Returns the layout of the produced frames.
	Size() image.Point                   // Returns the frame width and height in pixels.
	CopyFrameTo(dst []byte) (int, error) // Copies the latest frame into dst and returns the bytes written.
}

// FrameSink defines a consumer of raw frames, typically an encoder input.
type FrameSink interface {
	WriteFrame(data []byte, stride int) error // Consumes one frame; data must not be retained after return.
}
