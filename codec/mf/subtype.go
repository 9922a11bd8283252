package mf

import (
	"bytes"
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/ugparu/mfcore"
	"github.com/ugparu/mfcore/utils"
)

// videoSubtypeSuffix holds bytes 4..15 shared by every video subtype identifier:
// Data2 0x0000, Data3 0x0010, Data4 80 00 00 AA 00 38 9B 71.
var videoSubtypeSuffix = [12]byte{0x00, 0x00, 0x00, 0x10, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}

// VideoSubtype builds the video subtype identifier for a raw format id or FourCC value.
// The id occupies the first field, so FourCC "NV12" gives 3231564e-0000-0010-8000-00aa00389b71.
func VideoSubtype(raw uint32) uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint32(id[:4], raw)
	copy(id[4:], videoSubtypeSuffix[:])
	return id
}

// VideoSubtypeFromFourCC is VideoSubtype(FourCC(code)).
func VideoSubtypeFromFourCC(code string) (uuid.UUID, error) {
	raw, err := FourCC(code)
	if err != nil {
		return uuid.Nil, err
	}
	return VideoSubtype(raw), nil
}

// SubtypeFourCC returns the raw id of a video subtype identifier.
// It reports false when id does not carry the video subtype suffix.
func SubtypeFourCC(id uuid.UUID) (uint32, bool) {
	if !bytes.Equal(id[4:], videoSubtypeSuffix[:]) {
		return 0, false
	}
	return binary.BigEndian.Uint32(id[:4]), true
}

// SubtypeFor returns the video subtype identifier of a pixel format.
func SubtypeFor(pf mfcore.PixelFormat) (uuid.UUID, error) {
	if raw, ok := pf.RawID(); ok {
		return VideoSubtype(raw), nil
	}
	if code := pf.FourCC(); code != "" {
		return VideoSubtypeFromFourCC(code)
	}
	return uuid.Nil, utils.NotFoundError{Descriptor: pf.String()}
}

// MarshalGUID returns the in-memory layout of the native GUID struct,
// whose first three fields are little-endian integers.
func MarshalGUID(id uuid.UUID) [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint32(b[0:], binary.BigEndian.Uint32(id[0:]))
	binary.LittleEndian.PutUint16(b[4:], binary.BigEndian.Uint16(id[4:]))
	binary.LittleEndian.PutUint16(b[6:], binary.BigEndian.Uint16(id[6:]))
	copy(b[8:], id[8:])
	return b
}

// UnmarshalGUID is the inverse of MarshalGUID.
func UnmarshalGUID(b [16]byte) uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint32(id[0:], binary.LittleEndian.Uint32(b[0:]))
	binary.BigEndian.PutUint16(id[4:], binary.LittleEndian.Uint16(b[4:]))
	binary.BigEndian.PutUint16(id[6:], binary.LittleEndian.Uint16(b[6:]))
	copy(id[8:], b[8:])
	return id
}
