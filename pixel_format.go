package mfcore

// PixelFormat represents the frame layouts exchanged with the native framework.
type PixelFormat uint8

// Constants representing supported pixel formats.
const (
	RGB32  = PixelFormat(iota + 1) // 32-bit BGRX, alpha byte unused
	ARGB32                         // 32-bit BGRA
	RGB24                          // 24-bit BGR
	NV12                           // planar Y plus interleaved UV, 4:2:0
	YUY2                           // packed YUV 4:2:2
	I420                           // planar YUV 4:2:0
	H264                           // compressed H.264 elementary stream
	MJPG                           // compressed motion JPEG
)

// Direct3D format ids the native framework uses instead of a FourCC for RGB layouts.
const (
	d3dFmtR8G8B8   = 20
	d3dFmtA8R8G8B8 = 21
	d3dFmtX8R8G8B8 = 22
)

// BitsPerPixel returns the average number of bits per pixel, 0 for compressed formats.
func (pf PixelFormat) BitsPerPixel() int {
	switch pf {
	case RGB32, ARGB32:
		return 32 //nolint:mnd
	case RGB24:
		return 24 //nolint:mnd
	case YUY2:
		return 16 //nolint:mnd
	case NV12, I420:
		return 12 //nolint:mnd
	default:
		return 0
	}
}

// FrameSize returns the number of bytes of one uncompressed frame, 0 for compressed formats.
func (pf PixelFormat) FrameSize(width, height int) int {
	return width * height * pf.BitsPerPixel() / 8 //nolint:mnd
}

// FourCC returns the four-character code of the format, or "" when it is identified by a raw id.
func (pf PixelFormat) FourCC() string {
	switch pf { //nolint:exhaustive // RGB formats use raw ids
	case NV12:
		return "NV12"
	case YUY2:
		return "YUY2"
	case I420:
		return "I420"
	case H264:
		return "H264"
	case MJPG:
		return "MJPG"
	default:
		return ""
	}
}

// RawID returns the Direct3D format id of the RGB formats.
func (pf PixelFormat) RawID() (uint32, bool) {
	switch pf { //nolint:exhaustive // other formats use a FourCC
	case RGB32:
		return d3dFmtX8R8G8B8, true
	case ARGB32:
		return d3dFmtA8R8G8B8, true
	case RGB24:
		return d3dFmtR8G8B8, true
	default:
		return 0, false
	}
}

// String returns a human-readable string representation of the pixel format.
func (pf PixelFormat) String() string {
	switch pf {
	case RGB32:
		return "RGB32"
	case ARGB32:
		return "ARGB32"
	case RGB24:
		return "RGB24"
	case NV12:
		return "NV12"
	case YUY2:
		return "YUY2"
	case I420:
		return "I420"
	case H264:
		return "H264"
	case MJPG:
		return "MJPG"
	default:
		return "?"
	}
}

// IsPlanar checks if the pixel format stores its channels in separate planes.
func (pf PixelFormat) IsPlanar() bool {
	switch pf { //nolint:exhaustive // other formats are packed
	case NV12, I420:
		return true
	default:
		return false
	}
}

// IsCompressed checks if the pixel format carries an encoded bitstream.
func (pf PixelFormat) IsCompressed() bool {
	return pf == H264 || pf == MJPG
}

// PixelFormats lists every known pixel format.
func PixelFormats() []PixelFormat {
	return []PixelFormat{RGB32, ARGB32, RGB24, NV12, YUY2, I420, H264, MJPG}
}
