package ring

import (
	"math/big"
	"math/bits"
)

// GetBRedConstant computes the constant for the Barrett reduction with
// a radix of 2^128, i.e. floor(2^128/q) stored as two 64-bit words
// (hi, lo). The constant only fits 128 bits for q > 1.
func GetBRedConstant(q uint64) [2]uint64 {
	c := new(big.Int).Lsh(big.NewInt(1), 128)
	c.Quo(c, new(big.Int).SetUint64(q))

	hi := new(big.Int).Rsh(c, 64).Uint64()
	lo := c.Uint64()

	return [2]uint64{hi, lo}
}

// BRedAdd returns x mod q, for any 64-bit x.
func BRedAdd(x, q uint64, bredconstant [2]uint64) (r uint64) {
	s0, _ := bits.Mul64(x, bredconstant[0])
	r = x - s0*q
	if r >= q {
		r -= q
	}
	return
}

// BRedAddLazy returns x mod q in constant time, with r in [0, 2q-1].
func BRedAddLazy(x, q uint64, bredconstant [2]uint64) uint64 {
	s0, _ := bits.Mul64(x, bredconstant[0])
	return x - s0*q
}

// BRed returns x*y mod q through a 64x64 -> 128-bit multiplication
// followed by a Barrett reduction.
func BRed(x, y, q uint64, bredconstant [2]uint64) (r uint64) {

	var mhi, mlo, lhi, hhi, hlo, s0, s1, carry uint64

	ahi, alo := bits.Mul64(x, y)

	// (alo*blo)>>64

	lhi, _ = bits.Mul64(alo, bredconstant[1])

	// ((ahi*blo + alo*bhi) + (alo*blo)>>64)>>64

	mhi, mlo = bits.Mul64(alo, bredconstant[0])

	s0, carry = bits.Add64(mlo, lhi, 0)

	s1 = mhi + carry

	hhi, hlo = bits.Mul64(ahi, bredconstant[1])

	_, carry = bits.Add64(hlo, s0, 0)

	lhi = hhi + carry

	// (ahi*bhi) + (((ahi*blo + alo*bhi) + (alo*blo)>>64)>>64)

	s0 = ahi*bredconstant[0] + s1 + lhi

	r = alo - s0*q

	if r >= q {
		r -= q
	}

	return
}

// GetMRedConstant computes the constant qInv = (q^-1) mod 2^64 required
// for the Montgomery reduction. q must be odd.
func GetMRedConstant(q uint64) (qInv uint64) {
	var x uint64
	qInv = 1
	x = q
	for i := 0; i < 63; i++ {
		qInv *= x
		x *= x
	}
	return
}

// MForm returns a*2^64 mod q, the Montgomery form of a.
func MForm(a, q uint64, bredconstant [2]uint64) (r uint64) {
	mhi, _ := bits.Mul64(a, bredconstant[1])
	r = -(a*bredconstant[0] + mhi) * q
	if r >= q {
		r -= q
	}
	return
}

// IMForm returns a*(2^64)^-1 mod q, the inverse of MForm.
func IMForm(a, q, mredconstant uint64) (r uint64) {
	r, _ = bits.Mul64(a*mredconstant, q)
	r = q - r
	if r >= q {
		r -= q
	}
	return
}

// MRed computes x*y*(2^64)^-1 mod q, a 64x64-bit multiplication
// followed by a Montgomery reduction.
func MRed(x, y, q, mredconstant uint64) (r uint64) {
	ahi, alo := bits.Mul64(x, y)
	R := alo * mredconstant
	H, _ := bits.Mul64(R, q)
	r = ahi - H + q
	if r >= q {
		r -= q
	}
	return
}

// CRed returns a mod q, where a is in the range [0, 2q-1].
func CRed(a, q uint64) uint64 {
	if a >= q {
		return a - q
	}
	return a
}
