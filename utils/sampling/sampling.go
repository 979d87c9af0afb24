package sampling

import (
	"crypto/rand"
	"encoding/binary"
)

// RandUint64 returns a random value in [0, 2^64-1].
func RandUint64() uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}
