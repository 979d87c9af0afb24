package ring

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/latticore/modring/utils/sampling"
)

func TestMatrix(t *testing.T) {

	for _, q := range []uint64{13, 3329, 0xFFFFFFFFFFFFFFC5} {

		m, err := NewModulus(q)
		require.NoError(t, err)

		prng, err := sampling.NewKeyedPRNG([]byte("matrix-test"))
		require.NoError(t, err)

		sampler := NewUniformSampler(prng, m)

		rows, cols := 4, 5

		A := sampler.ReadMatrix(rows, cols)
		B := sampler.ReadMatrix(rows, cols)
		x := sampler.ReadVector(cols)

		t.Run(testString("Matrix/Zero", q), func(t *testing.T) {

			zero := m.NewMatrix(rows, cols)

			require.True(t, zero.IsZero())
			require.True(t, A.Add(zero).Equal(A))
			require.True(t, A.Sub(A).IsZero())
		})

		t.Run(testString("Matrix/SetAt", q), func(t *testing.T) {

			mat := m.NewMatrix(rows, cols)
			mat.Set(2, 3, m.One())

			require.True(t, mat.At(2, 3).Equal(m.One()))
			require.True(t, mat.At(0, 0).IsZero())

			// Row returns a copy, not a view.
			row := mat.Row(2)
			row[3] = m.Zero()
			require.True(t, mat.At(2, 3).Equal(m.One()))
		})

		t.Run(testString("Matrix/MulVec", q), func(t *testing.T) {

			bigQ := new(big.Int).SetUint64(q)
			tmp := new(big.Int)

			y := A.MulVec(x)
			require.Equal(t, rows, y.Dim())

			for r := 0; r < rows; r++ {

				want := new(big.Int)
				for c := 0; c < cols; c++ {
					tmp.SetUint64(A.At(r, c).Uint64())
					tmp.Mul(tmp, new(big.Int).SetUint64(x[c].Uint64()))
					want.Add(want, tmp)
				}
				want.Mod(want, bigQ)

				require.Equal(t, want.Uint64(), y[r].Uint64())
			}

			// Linearity: (A+B)x == Ax + Bx.
			require.True(t, A.Add(B).MulVec(x).Equal(A.MulVec(x).Add(B.MulVec(x))))
		})

		t.Run(testString("Matrix/Mul", q), func(t *testing.T) {

			C := sampler.ReadMatrix(cols, 3)
			z := sampler.ReadVector(3)

			// (A*C)z == A*(Cz)
			require.True(t, A.Mul(C).MulVec(z).Equal(A.MulVec(C.MulVec(z))))

			// Multiplying by the identity is a no-op.
			identity := m.NewMatrix(cols, cols)
			for i := 0; i < cols; i++ {
				identity.Set(i, i, m.One())
			}
			require.True(t, A.Mul(identity).Equal(A))
		})

		t.Run(testString("Matrix/CopyNew", q), func(t *testing.T) {

			cpy := A.CopyNew()
			require.True(t, cmp.Equal(A, cpy)) // also tests Equatable

			cpy.Set(0, 0, cpy.At(0, 0).Add(m.One()))
			require.False(t, cpy.At(0, 0).Equal(A.At(0, 0)))
		})

		t.Run(testString("Matrix/Bounds", q), func(t *testing.T) {

			require.Panics(t, func() { A.At(rows, 0) })
			require.Panics(t, func() { A.At(0, cols) })
			require.Panics(t, func() { A.At(-1, 0) })
			require.Panics(t, func() { A.Set(rows, 0, m.Zero()) })
			require.Panics(t, func() { A.Row(rows) })
			require.Panics(t, func() { A.MulVec(sampler.ReadVector(cols - 1)) })
			require.Panics(t, func() { A.Mul(B) }) // cols != rows
			require.Panics(t, func() { m.NewMatrix(0, 1) })
		})
	}
}
