// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schur

import (
	"github.com/jamestjsp/schur/internal/hqr"
	"gonum.org/v1/gonum/mat"
)

// Vectors computes the right eigenvectors of the upper triangular
// matrix t, as returned by DecomposeCmplx, and returns them as the
// columns of a new matrix. Column k is the eigenvector of the
// eigenvalue t[k,k], normalized so that the largest |Re|+|Im| over its
// entries is one.
//
// If z is non-nil it must be the Schur basis belonging to t, and the
// eigenvectors are rotated back into the original basis, V = Z * X, so
// that A*V[:,k] = t[k,k]*V[:,k] for the matrix A that was decomposed.
// If z is nil the eigenvectors of t itself are returned.
//
// Neither t nor z is modified. Vectors returns ErrNonSquare if t is
// not square or z has different dimensions.
func Vectors(t, z *mat.CDense) (*mat.CDense, error) {
	r, c := t.Dims()
	if r != c {
		return nil, ErrNonSquare
	}
	n := r
	var zd []complex128
	var ldz int
	if z != nil {
		zr, zc := z.Dims()
		if zr != n || zc != n {
			return nil, ErrNonSquare
		}
		zraw := z.RawCMatrix()
		zd, ldz = zraw.Data, zraw.Stride
	}

	// The solver perturbs the diagonal of its input in place, so work
	// on a copy.
	tt := mat.NewCDense(n, n, nil)
	tt.Copy(t)
	traw := tt.RawCMatrix()

	v := mat.NewCDense(n, n, nil)
	vraw := v.RawCMatrix()
	hqr.Ztrvecs(n, traw.Data, traw.Stride, zd, ldz, vraw.Data, vraw.Stride)
	return v, nil
}
