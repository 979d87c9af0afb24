/*
Package modring provides exact arithmetic over the integers modulo an arbitrary
positive modulus Q, together with the generic ring capabilities and the
vector/matrix types built on top of them. It is intended as the arithmetic
groundwork for lattice-based constructions operating over finite-rank
commutative rings.
*/
package modring
