package ring

import (
	"encoding/binary"

	"github.com/latticore/modring/utils/sampling"
)

const samplerBufferSize = 1024

// UniformSampler reads masked 64-bit words from a PRNG and rejection-
// samples them into elements uniform over Z/qZ.
//
// A UniformSampler is not safe for concurrent use; the elements it
// returns are.
type UniformSampler struct {
	prng sampling.PRNG
	m    *Modulus
	buff []byte
	ptr  int
}

// NewUniformSampler creates a new UniformSampler over Z/qZ drawing its
// randomness from prng. Seeded with a [sampling.KeyedPRNG], the output
// sequence is deterministic in the key.
func NewUniformSampler(prng sampling.PRNG, m *Modulus) *UniformSampler {
	return &UniformSampler{
		prng: prng,
		m:    m,
		buff: make([]byte, samplerBufferSize),
		ptr:  samplerBufferSize,
	}
}

// Read samples a uniform element of Z/qZ.
func (u *UniformSampler) Read() Element {

	q, mask := u.m.q, u.m.mask

	for {
		// Refills the buffer when it runs empty.
		if u.ptr == len(u.buff) {
			if _, err := u.prng.Read(u.buff); err != nil {
				// Sanity check, this error should not happen.
				panic(err)
			}
			u.ptr = 0
		}

		c := binary.BigEndian.Uint64(u.buff[u.ptr:u.ptr+8]) & mask
		u.ptr += 8

		// Masked candidates land in [0, 2^bit_length(q-1)), so fewer
		// than half are rejected.
		if c < q {
			return Element{m: u.m, v: c}
		}
	}
}

// ReadVector samples a uniform vector of dimension dim over Z/qZ.
func (u *UniformSampler) ReadVector(dim int) Vector[Element] {
	v := make(Vector[Element], dim)
	for i := range v {
		v[i] = u.Read()
	}
	return v
}

// ReadMatrix samples a uniform rows x cols matrix over Z/qZ.
func (u *UniformSampler) ReadMatrix(rows, cols int) *Matrix[Element] {
	mat := u.m.NewMatrix(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			mat.Set(r, c, u.Read())
		}
	}
	return mat
}
