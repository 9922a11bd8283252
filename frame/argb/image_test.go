package argb

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"
)

func TestColorWord(t *testing.T) {
	t.Parallel()

	c := Color{A: 0xFF, R: 0x11, G: 0x22, B: 0x33}
	require.Equal(t, uint32(0xFF112233), c.Word())
	require.Equal(t, c, ColorOf(0xFF112233))

	r, g, b, a := c.RGBA()
	require.Equal(t, uint32(0x1111), r)
	require.Equal(t, uint32(0x2222), g)
	require.Equal(t, uint32(0x3333), b)
	require.Equal(t, uint32(0xFFFF), a)
}

func TestModelConvert(t *testing.T) {
	t.Parallel()

	c := Color{A: 1, R: 2, G: 3, B: 4}
	require.Equal(t, c, Model{}.Convert(c))
	require.Equal(t, Color{A: 0xFF, R: 0x10, G: 0x20, B: 0x30}, Model{}.Convert(color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}))
	require.Equal(t, Color{A: 0x80, R: 0xFF}, Model{}.Convert(color.NRGBA{R: 0xFF, A: 0x80}))
}

func TestAtSet(t *testing.T) {
	t.Parallel()

	b := newBuffer(t, 2, 2)
	require.NoError(t, b.FillFrom(nil))

	b.Set(1, 0, color.NRGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xFF})
	require.Equal(t, Color{A: 0xFF, R: 0xAA, G: 0xBB, B: 0xCC}, b.At(1, 0))

	v, err := b.Pixel(1, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(0xFFAABBCC), uint32(v))

	b.Set(5, 5, color.White)
	require.Equal(t, Color{}, b.At(5, 5))
	require.IsType(t, Model{}, b.ColorModel())

	var _ draw.Image = b
}

func TestFillFromImageSameSize(t *testing.T) {
	t.Parallel()

	src := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
		for x := src.Rect.Min.X; x < src.Rect.Max.X; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x7F, A: 0xFF})
		}
	}

	b := newBuffer(t, 3, 2)
	require.NoError(t, b.FillFromImage(src))
	require.True(t, b.Opaque())

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			require.Equal(t, Color{A: 0xFF, R: uint8(x + 10), G: uint8(y + 10), B: 0x7F}, b.At(x, y))
		}
	}
}

func TestFillFromImageScaled(t *testing.T) {
	t.Parallel()

	src := image.NewUniform(color.NRGBA{R: 0x40, G: 0x80, B: 0xC0, A: 0xFF})
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	draw.Draw(img, img.Bounds(), src, image.Point{}, draw.Src)

	b := newBuffer(t, 4, 2)
	require.NoError(t, b.FillFromImage(img))

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			c, ok := b.At(x, y).(Color)
			require.True(t, ok)
			require.InDelta(t, 0xFF, c.A, 1)
			require.InDelta(t, 0x40, c.R, 1)
			require.InDelta(t, 0x80, c.G, 1)
			require.InDelta(t, 0xC0, c.B, 1)
		}
	}
}
