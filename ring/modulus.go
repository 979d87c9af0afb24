// Package ring implements exact arithmetic over Z/qZ for an arbitrary
// modulus q > 0, the generic ring capabilities satisfied by its element
// type, and vectors and matrices of ring elements.
package ring

import (
	"fmt"
	"math/bits"
)

// maxBarrettBits is the largest modulus bit-length for which the
// precomputed Barrett and Montgomery constants guarantee an exact
// reduction with a single conditional subtraction. Larger moduli go
// through a 128-bit divide instead.
const maxBarrettBits = 62

// Modulus stores a modulus q > 0 along with the precomputations for
// fast reduction mod q. Every field is set once by NewModulus, so the
// choice between the narrow and the widened arithmetic paths is a fact
// of the modulus, not a data-dependent branch taken per operation.
type Modulus struct {

	// q is the modulus itself.
	q uint64

	// 2^bit_length(q-1) - 1
	mask uint64

	// Barrett reduction constant, valid while wideMul is unset.
	bredConstant [2]uint64

	// Montgomery reduction constant, 0 when q does not support the
	// Montgomery form.
	mredConstant uint64

	// wideAdd is set when 2q overflows 64 bits: sums must then carry
	// through a 65-bit intermediate before reducing.
	wideAdd bool

	// wideMul is set when q is outside the range covered by the
	// Barrett constants: products then reduce through a 128-bit
	// divide. Products always widen to 128 bits either way, since
	// q^2 overflows 64 bits for any q above 2^32.
	wideMul bool
}

// NewModulus returns a new Modulus for the ring Z/qZ.
// An error is returned if q = 0, as reduction modulo zero is undefined.
func NewModulus(q uint64) (m *Modulus, err error) {

	if q == 0 {
		return nil, fmt.Errorf("invalid modulus: q = 0")
	}

	m = &Modulus{q: q}

	m.mask = (1 << uint64(bits.Len64(q-1))) - 1

	m.wideAdd = q > 1<<63

	// q = 1 is the degenerate ring {0}; its Barrett constant (2^128)
	// does not fit two words, so it shares the divide path.
	m.wideMul = q == 1 || bits.Len64(q) > maxBarrettBits

	if !m.wideMul {
		m.bredConstant = GetBRedConstant(q)

		// No valid Montgomery form modulo an even q.
		if q&1 == 1 {
			m.mredConstant = GetMRedConstant(q)
		}
	}

	return m, nil
}

// Q returns the modulus.
func (m *Modulus) Q() uint64 {
	return m.q
}

// Mask returns 2^bit_length(q-1) - 1, the mask used when rejection-
// sampling uniform values in [0, q).
func (m *Modulus) Mask() uint64 {
	return m.mask
}

// reduce returns x mod q, for any 64-bit x.
func (m *Modulus) reduce(x uint64) uint64 {
	if m.wideMul {
		return x % m.q
	}
	return BRedAdd(x, m.q, m.bredConstant)
}
