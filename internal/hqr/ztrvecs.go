// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hqr

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
)

// Ztrvecs computes the right eigenvectors of the n×n upper triangular
// matrix t by back-substitution and stores them as the columns of v.
// If z is non-nil each eigenvector is rotated into the original basis,
// v[:,k] = Z * x; otherwise the eigenvectors of t itself are returned.
// Column k is normalized so that the largest |Re|+|Im| of its entries
// is one.
//
// The diagonal of t is temporarily perturbed so that no pivot is
// smaller than smin, and the substitution rescales the partial solution
// whenever growth threatens overflow. t is restored before return.
func Ztrvecs(n int, t []complex128, ldt int, z []complex128, ldz int, v []complex128, ldv int) {
	if n == 0 {
		return
	}

	smlnum := SafeMin * (float64(n) / Eps)
	bignum := 1 / smlnum

	// Column norms of the strict upper triangle, for the growth test.
	tnorms := make([]float64, n)
	for j := 1; j < n; j++ {
		var s float64
		for i := 0; i < j; i++ {
			s += zabs1(t[i*ldt+j])
		}
		tnorms[j] = s
	}

	diag := make([]complex128, n)
	x := make([]complex128, n)

	for k := n - 1; k >= 0; k-- {
		lambda := t[k*ldt+k]
		smin := math.Max(Ulp*zabs1(lambda), smlnum)

		for j := 0; j < k; j++ {
			diag[j] = t[j*ldt+j]
			d := t[j*ldt+j] - lambda
			if zabs1(d) < smin {
				d = complex(smin, 0)
			}
			t[j*ldt+j] = d
			x[j] = -t[j*ldt+k]
		}
		vscale := zusolve(k, t, ldt, x, tnorms, bignum)
		x[k] = complex(vscale, 0)

		if z != nil {
			// Rotate into the original basis: v[:,k] = Z[:,0:k+1] * x.
			cblas128.Gemv(blas.NoTrans,
				1, cblas128.General{Rows: n, Cols: k + 1, Stride: ldz, Data: z},
				cblas128.Vector{N: k + 1, Inc: 1, Data: x},
				0, cblas128.Vector{N: n, Inc: ldv, Data: v[k:]})
		} else {
			for i := 0; i <= k; i++ {
				v[i*ldv+k] = x[i]
			}
			for i := k + 1; i < n; i++ {
				v[i*ldv+k] = 0
			}
		}

		// Normalize the column.
		var vmax float64
		for i := 0; i < n; i++ {
			vmax = math.Max(vmax, zabs1(v[i*ldv+k]))
		}
		if vmax > 0 {
			cblas128.Dscal(1/vmax, cblas128.Vector{N: n, Inc: ldv, Data: v[k:]})
		}

		for j := 0; j < k; j++ {
			t[j*ldt+j] = diag[j]
		}
	}
}

// zusolve solves (T - λI) x = b in place for the leading k×k perturbed
// triangular system, rescaling x to avoid overflow. It returns the
// total scale factor applied to the right-hand side.
func zusolve(k int, t []complex128, ldt int, x []complex128, cnorm []float64, bignum float64) float64 {
	scale := 1.0
	for j := k - 1; j >= 0; j-- {
		tjj := zabs1(t[j*ldt+j])
		xj := zabs1(x[j])
		if tjj < 1 && xj > tjj*bignum {
			// Scale down to avoid overflow in the division.
			rec := tjj * bignum / xj
			cblas128.Dscal(rec, cblas128.Vector{N: k, Inc: 1, Data: x})
			scale *= rec
		}
		x[j] /= t[j*ldt+j]
		xj = zabs1(x[j])
		if xj > 1 && cnorm[j] > bignum/xj {
			rec := 1 / xj
			cblas128.Dscal(rec, cblas128.Vector{N: k, Inc: 1, Data: x})
			scale *= rec
		}
		if j > 0 {
			cblas128.Axpy(-x[j],
				cblas128.Vector{N: j, Inc: ldt, Data: t[j:]},
				cblas128.Vector{N: j, Inc: 1, Data: x})
		}
	}
	return scale
}
