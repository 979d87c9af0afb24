package ring

// Ring is the capability satisfied by any type whose values form a
// commutative ring under the four operations below, with value
// semantics: operations return a new value and never mutate their
// receiver. Conformance is structural; any type carrying the methods
// qualifies, Element being the rank-1 instance.
type Ring[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	Equal(T) bool
	IsZero() bool
}

// FinRankRing is a Ring whose values are free modules of finite rank
// over Z/qZ, i.e. determined by a fixed-length vector of Rank()
// unsigned coordinates. Element is the rank-1 case (the coordinate
// vector is a single integer); a degree-N polynomial quotient ring
// would be the rank-N case. The capability exists so that vector and
// matrix code is written once, generically, over any such ring.
type FinRankRing[T any] interface {
	Ring[T]

	Rank() int
	Zero() T
	One() T
	FromCoeffs([]uint64) (T, error)
}

var _ FinRankRing[Element] = Element{}
