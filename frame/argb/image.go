package argb

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

const (
	alphaShift = 24
	redShift   = 16
	greenShift = 8
)

// Color is a non-premultiplied pixel as stored in a Buffer word.
type Color struct {
	A, R, G, B uint8
}

// Word returns the pixel word of the colour.
func (c Color) Word() uint32 {
	return uint32(c.A)<<alphaShift | uint32(c.R)<<redShift | uint32(c.G)<<greenShift | uint32(c.B)
}

// ColorOf splits a pixel word into its channels.
func ColorOf(word uint32) Color {
	return Color{
		A: uint8(word >> alphaShift),
		R: uint8(word >> redShift),
		G: uint8(word >> greenShift),
		B: uint8(word),
	}
}

// RGBA returns the alpha-premultiplied red, green, blue, and alpha values for the color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Model is a color.Model that converts any color.Color to a Color.
type Model struct{}

// Convert converts a color.Color to a Color.
func (Model) Convert(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{A: n.A, R: n.R, G: n.G, B: n.B}
}

// ColorModel returns the Model of the buffer.
func (*Buffer) ColorModel() color.Model {
	return Model{}
}

// Bounds returns the rectangle of the buffer, empty after Release.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At returns the colour at (x, y), transparent black outside the buffer.
func (b *Buffer) At(x, y int) color.Color {
	off, err := b.offset(x, y)
	if err != nil {
		return Color{}
	}
	return ColorOf(loadWord(b.pix[off:]))
}

// Set stores the colour at (x, y). Points outside the buffer are ignored.
func (b *Buffer) Set(x, y int, c color.Color) {
	off, err := b.offset(x, y)
	if err != nil {
		return
	}
	c1, _ := Model{}.Convert(c).(Color)
	storeWord(b.pix[off:], c1.Word())
}

// Opaque reports whether every pixel has a fully opaque alpha channel.
func (b *Buffer) Opaque() bool {
	if b.once.Released() {
		return false
	}
	for i := alphaOffset; i < len(b.pix); i += BytesPerPixel {
		if b.pix[i] != 0xFF {
			return false
		}
	}
	return true
}

// FillFromImage draws src over the whole buffer, scaling it when the sizes differ.
func (b *Buffer) FillFromImage(src image.Image) error {
	if b.once.Released() {
		return b.disposedError()
	}
	sr := src.Bounds()
	if sr.Size() == b.Size() {
		draw.Copy(b, image.Point{}, src, sr, draw.Src, nil)
		return nil
	}
	draw.ApproxBiLinear.Scale(b, b.Bounds(), src, sr, draw.Src, nil)
	return nil
}
