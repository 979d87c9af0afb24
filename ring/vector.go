package ring

import (
	"fmt"
)

// Vector is a fixed-length vector of ring elements. It forms an
// additive abelian group under componentwise addition, with the
// all-zeros vector as identity and componentwise negation as inverse.
type Vector[T Ring[T]] []T

// NewVector returns the vector over Z/qZ whose entries are the given
// raw integers reduced mod q.
func (m *Modulus) NewVector(coeffs []uint64) Vector[Element] {
	v := make(Vector[Element], len(coeffs))
	for i, c := range coeffs {
		v[i] = m.NewElement(c)
	}
	return v
}

// ZeroVector returns the additive identity of dimension dim over Z/qZ.
func (m *Modulus) ZeroVector(dim int) Vector[Element] {
	v := make(Vector[Element], dim)
	for i := range v {
		v[i] = m.Zero()
	}
	return v
}

// Dim returns the dimension of v.
func (v Vector[T]) Dim() int {
	return len(v)
}

// Add returns v + w componentwise. v and w must have the same dimension.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	if len(v) != len(w) {
		panic(fmt.Errorf("dimension mismatch: len(v)=%d len(w)=%d", len(v), len(w)))
	}
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = v[i].Add(w[i])
	}
	return out
}

// Sub returns v - w componentwise. v and w must have the same dimension.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	if len(v) != len(w) {
		panic(fmt.Errorf("dimension mismatch: len(v)=%d len(w)=%d", len(v), len(w)))
	}
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = v[i].Sub(w[i])
	}
	return out
}

// Neg returns -v componentwise.
func (v Vector[T]) Neg() Vector[T] {
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = v[i].Neg()
	}
	return out
}

// Dot returns the inner product <v, w>, each term taken with the
// ring's multiplication and the sum with the ring's addition.
// v and w must have the same non-zero dimension.
func (v Vector[T]) Dot(w Vector[T]) T {
	if len(v) != len(w) || len(v) == 0 {
		panic(fmt.Errorf("dimension mismatch: len(v)=%d len(w)=%d", len(v), len(w)))
	}
	acc := v[0].Mul(w[0])
	for i := 1; i < len(v); i++ {
		acc = acc.Add(v[i].Mul(w[i]))
	}
	return acc
}

// Equal reports whether v and w have the same dimension and equal
// entries.
func (v Vector[T]) Equal(w Vector[T]) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if !v[i].Equal(w[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether every entry of v is zero.
func (v Vector[T]) IsZero() bool {
	for i := range v {
		if !v[i].IsZero() {
			return false
		}
	}
	return true
}

// CopyNew returns a copy of v with its own backing array.
func (v Vector[T]) CopyNew() Vector[T] {
	out := make(Vector[T], len(v))
	copy(out, v)
	return out
}
