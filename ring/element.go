package ring

import (
	"fmt"
	"math/bits"
)

// Element is an element of Z/qZ, stored as its representative in
// [0, q). Elements are immutable values: every operation returns a new
// Element satisfying the same invariant, and compound assignment is a
// rebind, e.g. a = a.Add(b).
//
// The zero value of the type is not usable; Elements are created
// through a Modulus.
type Element struct {
	m *Modulus
	v uint64
}

// NewElement returns x mod q as an element of Z/qZ. Construction is
// idempotent on already-reduced values: NewElement(e.Uint64()) == e.
func (m *Modulus) NewElement(x uint64) Element {
	return Element{m: m, v: m.reduce(x)}
}

// Zero returns the additive identity of Z/qZ.
func (m *Modulus) Zero() Element {
	return Element{m: m}
}

// One returns the multiplicative identity of Z/qZ.
// For q = 1 the ring collapses to {0} and One is Zero.
func (m *Modulus) One() Element {
	return m.NewElement(1)
}

// ElementFromCoeffs builds an element from its coordinate vector, which
// for the rank-1 ring Z/qZ is a single integer. An error is returned
// if coeffs does not have exactly one entry.
func (m *Modulus) ElementFromCoeffs(coeffs []uint64) (Element, error) {
	if len(coeffs) != 1 {
		return Element{}, fmt.Errorf("invalid coefficients: expected 1 coordinate, got %d", len(coeffs))
	}
	return m.NewElement(coeffs[0]), nil
}

// Uint64 returns the representative of e in [0, q).
func (e Element) Uint64() uint64 {
	return e.v
}

// Modulus returns the Modulus e belongs to.
func (e Element) Modulus() *Modulus {
	return e.m
}

// Add returns e + b mod q.
func (e Element) Add(b Element) Element {

	m := e.m

	if m.wideAdd {
		// 2q overflows 64 bits: carry the sum through 65 bits.
		// When the carry is set, q <= sum < 2q, so a single
		// (wrapping) subtraction of q reduces it.
		lo, carry := bits.Add64(e.v, b.v, 0)
		if carry == 1 {
			return Element{m: m, v: lo - m.q}
		}
		return Element{m: m, v: CRed(lo, m.q)}
	}

	return Element{m: m, v: CRed(e.v+b.v, m.q)}
}

// Sub returns e - b mod q.
func (e Element) Sub(b Element) Element {

	m := e.m

	if m.wideAdd {
		// e.v + q overflows 64 bits, so borrow instead.
		d, borrow := bits.Sub64(e.v, b.v, 0)
		if borrow == 1 {
			d += m.q
		}
		return Element{m: m, v: d}
	}

	return Element{m: m, v: CRed(e.v+m.q-b.v, m.q)}
}

// Neg returns -e mod q, with -0 = 0.
func (e Element) Neg() Element {
	if e.v == 0 {
		return e
	}
	return Element{m: e.m, v: e.m.q - e.v}
}

// Mul returns e * b mod q. The product always goes through a 128-bit
// intermediate, reduced with the Barrett constants when the modulus
// supports them and with a 128-bit divide otherwise.
func (e Element) Mul(b Element) Element {

	m := e.m

	if m.wideMul {
		hi, lo := bits.Mul64(e.v, b.v)
		_, r := bits.Div64(hi, lo, m.q)
		return Element{m: m, v: r}
	}

	return Element{m: m, v: BRed(e.v, b.v, m.q, m.bredConstant)}
}

// Pow returns e^k mod q by square-and-multiply, with e^0 = One. The
// ladder runs in the Montgomery domain when the modulus supports it.
func (e Element) Pow(k uint64) Element {

	m := e.m

	if m.mredConstant != 0 {

		y := MForm(1, m.q, m.bredConstant)
		x := MForm(e.v, m.q, m.bredConstant)

		for i := k; i > 0; i >>= 1 {
			if i&1 == 1 {
				y = MRed(y, x, m.q, m.mredConstant)
			}
			x = MRed(x, x, m.q, m.mredConstant)
		}

		return Element{m: m, v: IMForm(y, m.q, m.mredConstant)}
	}

	y := m.One()
	x := e

	for i := k; i > 0; i >>= 1 {
		if i&1 == 1 {
			y = y.Mul(x)
		}
		x = x.Mul(x)
	}

	return y
}

// Equal reports whether e and b are the same residue modulo the same q.
func (e Element) Equal(b Element) bool {
	return e.m.q == b.m.q && e.v == b.v
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.v == 0
}

// Zero returns the additive identity of the ring of e.
func (e Element) Zero() Element {
	return Element{m: e.m}
}

// One returns the multiplicative identity of the ring of e.
func (e Element) One() Element {
	return e.m.One()
}

// Rank returns 1: a modular integer is the rank-1 ring over itself.
func (e Element) Rank() int {
	return 1
}

// FromCoeffs builds an element of the ring of e from its coordinate
// vector. See [Modulus.ElementFromCoeffs].
func (e Element) FromCoeffs(coeffs []uint64) (Element, error) {
	return e.m.ElementFromCoeffs(coeffs)
}

func (e Element) String() string {
	return fmt.Sprintf("%d mod %d", e.v, e.m.q)
}
