package argb

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// alphaOffset is the byte of a pixel word that OR-ing AlphaMask sets.
var alphaOffset = func() int {
	if cpu.IsBigEndian {
		return 0
	}
	return BytesPerPixel - 1
}()

func loadWord(b []byte) uint32 {
	return binary.NativeEndian.Uint32(b)
}

func storeWord(b []byte, v uint32) {
	binary.NativeEndian.PutUint32(b, v)
}
