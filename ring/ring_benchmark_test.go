package ring

import (
	"testing"

	"github.com/latticore/modring/utils/sampling"
)

func BenchmarkElement(b *testing.B) {

	for _, q := range []uint64{0x1fffffffffe00001, 0xFFFFFFFFFFFFFFC5} {

		m, err := NewModulus(q)
		if err != nil {
			b.Fatal(err)
		}

		x := m.NewElement(sampling.RandUint64())
		y := m.NewElement(sampling.RandUint64())

		b.Run(testString("Add", q), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x = x.Add(y)
			}
		})

		b.Run(testString("Sub", q), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x = x.Sub(y)
			}
		})

		b.Run(testString("Mul", q), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x = x.Mul(y)
			}
		})

		b.Run(testString("Pow", q), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x = x.Pow(0xFFFF)
			}
		})
	}
}

func BenchmarkMulVec(b *testing.B) {

	m, err := NewModulus(0x1fffffffffe00001)
	if err != nil {
		b.Fatal(err)
	}

	prng, err := sampling.NewPRNG()
	if err != nil {
		b.Fatal(err)
	}

	sampler := NewUniformSampler(prng, m)

	A := sampler.ReadMatrix(64, 64)
	x := sampler.ReadVector(64)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		A.MulVec(x)
	}
}
