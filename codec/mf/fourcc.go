package mf

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ugparu/mfcore/utils"
)

const (
	fourCCLen = 4
	fourCCPad = 0x20
)

// FourCC packs up to four characters of code into a 32-bit value using the host byte order.
// Missing characters are padded with spaces.
func FourCC(code string) (uint32, error) {
	if code == "" {
		return 0, utils.InvalidArgumentError{Arg: "code", Reason: "empty FourCC"}
	}
	if n := utf8.RuneCountInString(code); n > fourCCLen {
		return 0, utils.InvalidArgumentError{
			Arg:    "code",
			Reason: fmt.Sprintf("FourCC %q has %d characters, at most %d allowed", code, n, fourCCLen),
		}
	}

	b := [fourCCLen]byte{fourCCPad, fourCCPad, fourCCPad, fourCCPad}
	copy(b[:], code)
	return binary.NativeEndian.Uint32(b[:]), nil
}

// FourCCInt32 is FourCC for callers that declare identifiers as signed integers.
// The bit pattern is identical.
func FourCCInt32(code string) (int32, error) {
	v, err := FourCC(code)
	return int32(v), err //nolint:gosec // reinterpretation is intended
}

// FourCCString unpacks a value built by FourCC, dropping the space padding.
func FourCCString(v uint32) string {
	var b [fourCCLen]byte
	binary.NativeEndian.PutUint32(b[:], v)
	return strings.TrimRight(string(b[:]), " ")
}
