package ring

import (
	"encoding/binary"

	"github.com/zeebo/blake3"

	"github.com/latticore/modring/utils/sampling"
)

const hashKeySize = 32

// UniformHash maps msg to a uniform vector of dimension dim over Z/qZ.
// The output is deterministic in (q, msg): the modulus and the message
// are hashed with blake3 into the key of a KeyedPRNG, which then
// drives a UniformSampler.
func UniformHash(m *Modulus, msg []byte, dim int) Vector[Element] {

	hasher := blake3.New()

	var qBuf [8]byte
	binary.BigEndian.PutUint64(qBuf[:], m.Q())
	hasher.Write(qBuf[:])
	hasher.Write(msg)

	sum := hasher.Sum(nil)

	prng, err := sampling.NewKeyedPRNG(sum[:hashKeySize])
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	return NewUniformSampler(prng, m).ReadVector(dim)
}
