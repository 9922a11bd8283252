package mf

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

const pairLen = 8

// PackInt32Pair encodes two values into one 64-bit attribute, for example a frame size.
// On little-endian hosts b takes the low four bytes and a the high four; big-endian hosts
// store a first. Either way the result equals int64(a)<<32 | int64(uint32(b)).
func PackInt32Pair(a, b int32) int64 {
	if cpu.IsBigEndian {
		return encodeBigEndianPair(a, b)
	}
	return encodeLittleEndianPair(a, b)
}

// UnpackInt32Pair is the inverse of PackInt32Pair.
func UnpackInt32Pair(packed int64) (a, b int32) {
	if cpu.IsBigEndian {
		return decodeBigEndianPair(packed)
	}
	return decodeLittleEndianPair(packed)
}

func encodeLittleEndianPair(a, b int32) int64 {
	var buf [pairLen]byte
	binary.LittleEndian.PutUint32(buf[0:], uint32(b))
	binary.LittleEndian.PutUint32(buf[4:], uint32(a))
	return int64(binary.LittleEndian.Uint64(buf[:])) //nolint:gosec // reinterpretation is intended
}

func decodeLittleEndianPair(packed int64) (a, b int32) {
	var buf [pairLen]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(packed))
	return int32(binary.LittleEndian.Uint32(buf[4:])), int32(binary.LittleEndian.Uint32(buf[0:])) //nolint:gosec
}

func encodeBigEndianPair(a, b int32) int64 {
	var buf [pairLen]byte
	binary.BigEndian.PutUint32(buf[0:], uint32(a))
	binary.BigEndian.PutUint32(buf[4:], uint32(b))
	return int64(binary.BigEndian.Uint64(buf[:])) //nolint:gosec // reinterpretation is intended
}

func decodeBigEndianPair(packed int64) (a, b int32) {
	var buf [pairLen]byte
	binary.BigEndian.PutUint64(buf[:], uint64(packed))
	return int32(binary.BigEndian.Uint32(buf[0:])), int32(binary.BigEndian.Uint32(buf[4:])) //nolint:gosec
}

// PackSize encodes a frame size attribute, width in the high half.
func PackSize(width, height uint32) int64 {
	return PackInt32Pair(int32(width), int32(height)) //nolint:gosec
}

// UnpackSize decodes a frame size attribute.
func UnpackSize(packed int64) (width, height uint32) {
	w, h := UnpackInt32Pair(packed)
	return uint32(w), uint32(h) //nolint:gosec
}

// PackRatio encodes a frame rate or pixel aspect ratio attribute, numerator in the high half.
func PackRatio(numerator, denominator uint32) int64 {
	return PackInt32Pair(int32(numerator), int32(denominator)) //nolint:gosec
}

// UnpackRatio decodes a ratio attribute.
func UnpackRatio(packed int64) (numerator, denominator uint32) {
	n, d := UnpackInt32Pair(packed)
	return uint32(n), uint32(d) //nolint:gosec
}
