package ring

import (
	"fmt"
)

// Matrix is a rows x cols matrix of ring elements backed by a flat,
// row-major owned buffer. Entries change only through Set; rows are
// never shared or interior-mutable.
type Matrix[T FinRankRing[T]] struct {
	rows, cols int
	data       []T
}

// NewMatrix returns the rows x cols zero matrix over the ring of the
// given element, the identity element for construction. rows and cols
// must be strictly positive.
func NewMatrix[T FinRankRing[T]](of T, rows, cols int) *Matrix[T] {
	if rows < 1 || cols < 1 {
		panic(fmt.Errorf("invalid matrix shape: %dx%d", rows, cols))
	}
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = of.Zero()
	}
	return &Matrix[T]{rows: rows, cols: cols, data: data}
}

// NewMatrix returns the rows x cols zero matrix over Z/qZ.
func (m *Modulus) NewMatrix(rows, cols int) *Matrix[Element] {
	return NewMatrix(m.Zero(), rows, cols)
}

// Rows returns the number of rows of mat.
func (mat *Matrix[T]) Rows() int {
	return mat.rows
}

// Cols returns the number of columns of mat.
func (mat *Matrix[T]) Cols() int {
	return mat.cols
}

func (mat *Matrix[T]) index(r, c int) int {
	if r < 0 || r >= mat.rows || c < 0 || c >= mat.cols {
		panic(fmt.Errorf("index (%d,%d) out of range for %dx%d matrix", r, c, mat.rows, mat.cols))
	}
	return r*mat.cols + c
}

// At returns the entry at row r, column c.
func (mat *Matrix[T]) At(r, c int) T {
	return mat.data[mat.index(r, c)]
}

// Set writes v to the entry at row r, column c.
func (mat *Matrix[T]) Set(r, c int, v T) {
	mat.data[mat.index(r, c)] = v
}

// Row returns a copy of row r. The returned vector does not alias the
// matrix buffer.
func (mat *Matrix[T]) Row(r int) Vector[T] {
	if r < 0 || r >= mat.rows {
		panic(fmt.Errorf("row %d out of range for %dx%d matrix", r, mat.rows, mat.cols))
	}
	out := make(Vector[T], mat.cols)
	copy(out, mat.data[r*mat.cols:(r+1)*mat.cols])
	return out
}

// Add returns mat + other componentwise. Shapes must match.
func (mat *Matrix[T]) Add(other *Matrix[T]) *Matrix[T] {
	if mat.rows != other.rows || mat.cols != other.cols {
		panic(fmt.Errorf("shape mismatch: %dx%d and %dx%d", mat.rows, mat.cols, other.rows, other.cols))
	}
	out := &Matrix[T]{rows: mat.rows, cols: mat.cols, data: make([]T, len(mat.data))}
	for i := range mat.data {
		out.data[i] = mat.data[i].Add(other.data[i])
	}
	return out
}

// Sub returns mat - other componentwise. Shapes must match.
func (mat *Matrix[T]) Sub(other *Matrix[T]) *Matrix[T] {
	if mat.rows != other.rows || mat.cols != other.cols {
		panic(fmt.Errorf("shape mismatch: %dx%d and %dx%d", mat.rows, mat.cols, other.rows, other.cols))
	}
	out := &Matrix[T]{rows: mat.rows, cols: mat.cols, data: make([]T, len(mat.data))}
	for i := range mat.data {
		out.data[i] = mat.data[i].Sub(other.data[i])
	}
	return out
}

// MulVec returns the matrix-vector product mat * x, where
// (mat*x)[r] = sum_c mat[r][c] * x[c], the sum taken with the ring's
// addition and each term with the ring's multiplication.
// x must have dimension Cols.
func (mat *Matrix[T]) MulVec(x Vector[T]) Vector[T] {
	if len(x) != mat.cols {
		panic(fmt.Errorf("dimension mismatch: %dx%d matrix with vector of dimension %d", mat.rows, mat.cols, len(x)))
	}
	out := make(Vector[T], mat.rows)
	for r := 0; r < mat.rows; r++ {
		row := mat.data[r*mat.cols : (r+1)*mat.cols]
		acc := row[0].Mul(x[0])
		for c := 1; c < mat.cols; c++ {
			acc = acc.Add(row[c].Mul(x[c]))
		}
		out[r] = acc
	}
	return out
}

// Mul returns the matrix product mat * other.
// mat.Cols must equal other.Rows.
func (mat *Matrix[T]) Mul(other *Matrix[T]) *Matrix[T] {
	if mat.cols != other.rows {
		panic(fmt.Errorf("shape mismatch: %dx%d and %dx%d", mat.rows, mat.cols, other.rows, other.cols))
	}
	out := &Matrix[T]{rows: mat.rows, cols: other.cols, data: make([]T, mat.rows*other.cols)}
	for r := 0; r < mat.rows; r++ {
		row := mat.data[r*mat.cols : (r+1)*mat.cols]
		for c := 0; c < other.cols; c++ {
			acc := row[0].Mul(other.data[c])
			for k := 1; k < mat.cols; k++ {
				acc = acc.Add(row[k].Mul(other.data[k*other.cols+c]))
			}
			out.data[r*other.cols+c] = acc
		}
	}
	return out
}

// Equal reports whether mat and other have the same shape and equal
// entries.
func (mat *Matrix[T]) Equal(other *Matrix[T]) bool {
	if mat.rows != other.rows || mat.cols != other.cols {
		return false
	}
	for i := range mat.data {
		if !mat.data[i].Equal(other.data[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether every entry of mat is zero.
func (mat *Matrix[T]) IsZero() bool {
	for i := range mat.data {
		if !mat.data[i].IsZero() {
			return false
		}
	}
	return true
}

// CopyNew returns a copy of mat with its own backing buffer.
func (mat *Matrix[T]) CopyNew() *Matrix[T] {
	out := &Matrix[T]{rows: mat.rows, cols: mat.cols, data: make([]T, len(mat.data))}
	copy(out.data, mat.data)
	return out
}
