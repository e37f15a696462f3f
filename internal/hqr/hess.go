// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hqr

import (
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
)

// Dgehd2 reduces the n×n matrix A to upper Hessenberg form by an
// unblocked orthogonal similarity transformation Qᵀ * A * Q = H. The
// Householder vectors are stored below the first subdiagonal of a and
// the scalar factors of the reflectors in tau, which must have length
// n-1. work must have length at least n.
func Dgehd2(n int, a []float64, lda int, tau, work []float64) {
	for i := 0; i < n-1; i++ {
		// Generate the reflector annihilating A[i+2:n, i].
		beta, taui := Dlarfg(n-i-2, a[(i+1)*lda+i], a[min(i+2, n-1)*lda+i:], lda)
		a[(i+1)*lda+i] = 1

		// Apply the reflector from the right to A[0:n, i+1:n].
		dlarfRight(n, n-i-1, a[(i+1)*lda+i:], lda, taui, a[i+1:], lda, work)
		// Apply the reflector from the left to A[i+1:n, i+1:n].
		dlarfLeft(n-i-1, n-i-1, a[(i+1)*lda+i:], lda, taui, a[(i+1)*lda+i+1:], lda, work)

		a[(i+1)*lda+i] = beta
		tau[i] = taui
	}
}

// dlarfLeft overwrites the m×n matrix c with H*c where
// H = I - tau*v*vᵀ and v is stored with stride incV.
func dlarfLeft(m, n int, v []float64, incV int, tau float64, c []float64, ldc int, work []float64) {
	if tau == 0 {
		return
	}
	bi := blas64.Implementation()
	// work = cᵀ * v
	bi.Dgemv(blas.Trans, m, n, 1, c, ldc, v, incV, 0, work, 1)
	// c -= tau * v * workᵀ
	bi.Dger(m, n, -tau, v, incV, work, 1, c, ldc)
}

// dlarfRight overwrites the m×n matrix c with c*H where
// H = I - tau*v*vᵀ and v is stored with stride incV.
func dlarfRight(m, n int, v []float64, incV int, tau float64, c []float64, ldc int, work []float64) {
	if tau == 0 {
		return
	}
	bi := blas64.Implementation()
	// work = c * v
	bi.Dgemv(blas.NoTrans, m, n, 1, c, ldc, v, incV, 0, work, 1)
	// c -= tau * work * vᵀ
	bi.Dger(m, n, -tau, work, 1, v, incV, c, ldc)
}

// Dorghr generates the orthogonal matrix Q of the Hessenberg reduction
// computed by Dgehd2 into the n×n matrix z. The reflectors are read
// from below the first subdiagonal of v and accumulated right to left
// into the identity. work must have length at least 2n.
func Dorghr(n int, v []float64, ldv int, tau []float64, z []float64, ldz int, work []float64) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				z[i*ldz+j] = 1
			} else {
				z[i*ldz+j] = 0
			}
		}
	}
	for j := n - 2; j >= 0; j-- {
		if tau[j] == 0 {
			continue
		}
		m := n - j - 1
		work[0] = 1
		for k := 1; k < m; k++ {
			work[k] = v[(j+1+k)*ldv+j]
		}
		dlarfLeft(m, m, work[:m], 1, tau[j], z[(j+1)*ldz+j+1:], ldz, work[n:])
	}
}

// Zgehd2 reduces the n×n complex matrix A to upper Hessenberg form by
// an unblocked unitary similarity transformation Qᴴ * A * Q = H. The
// Householder vectors are stored below the first subdiagonal of a and
// the scalar factors of the reflectors in tau, which must have length
// n-1. work must have length at least n.
func Zgehd2(n int, a []complex128, lda int, tau, work []complex128) {
	for i := 0; i < n-1; i++ {
		beta, taui := Zlarfg(n-i-2, a[(i+1)*lda+i], a[min(i+2, n-1)*lda+i:], lda)
		a[(i+1)*lda+i] = 1

		zlarfRight(n, n-i-1, a[(i+1)*lda+i:], lda, taui, a[i+1:], lda, work)
		zlarfLeft(n-i-1, n-i-1, a[(i+1)*lda+i:], lda, cmplx.Conj(taui), a[(i+1)*lda+i+1:], lda, work)

		a[(i+1)*lda+i] = beta
		tau[i] = taui
	}
}

// zlarfLeft overwrites the m×n matrix c with H*c where
// H = I - tau*v*vᴴ and v is stored with stride incV.
func zlarfLeft(m, n int, v []complex128, incV int, tau complex128, c []complex128, ldc int, work []complex128) {
	if tau == 0 {
		return
	}
	// work = cᴴ * v
	cblas128.Gemv(blas.ConjTrans,
		1, cblas128.General{Rows: m, Cols: n, Stride: ldc, Data: c},
		cblas128.Vector{N: m, Inc: incV, Data: v},
		0, cblas128.Vector{N: n, Inc: 1, Data: work})
	// c -= tau * v * workᴴ
	cblas128.Gerc(-tau,
		cblas128.Vector{N: m, Inc: incV, Data: v},
		cblas128.Vector{N: n, Inc: 1, Data: work},
		cblas128.General{Rows: m, Cols: n, Stride: ldc, Data: c})
}

// zlarfRight overwrites the m×n matrix c with c*H where
// H = I - tau*v*vᴴ and v is stored with stride incV.
func zlarfRight(m, n int, v []complex128, incV int, tau complex128, c []complex128, ldc int, work []complex128) {
	if tau == 0 {
		return
	}
	// work = c * v
	cblas128.Gemv(blas.NoTrans,
		1, cblas128.General{Rows: m, Cols: n, Stride: ldc, Data: c},
		cblas128.Vector{N: n, Inc: incV, Data: v},
		0, cblas128.Vector{N: m, Inc: 1, Data: work})
	// c -= tau * work * vᴴ
	cblas128.Gerc(-tau,
		cblas128.Vector{N: m, Inc: 1, Data: work},
		cblas128.Vector{N: n, Inc: incV, Data: v},
		cblas128.General{Rows: m, Cols: n, Stride: ldc, Data: c})
}

// Zunghr generates the unitary matrix Q of the Hessenberg reduction
// computed by Zgehd2 into the n×n matrix z. work must have length at
// least 2n.
func Zunghr(n int, v []complex128, ldv int, tau []complex128, z []complex128, ldz int, work []complex128) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				z[i*ldz+j] = 1
			} else {
				z[i*ldz+j] = 0
			}
		}
	}
	for j := n - 2; j >= 0; j-- {
		if tau[j] == 0 {
			continue
		}
		m := n - j - 1
		work[0] = 1
		for k := 1; k < m; k++ {
			work[k] = v[(j+1+k)*ldv+j]
		}
		zlarfLeft(m, m, work[:m], 1, tau[j], z[(j+1)*ldz+j+1:], ldz, work[n:])
	}
}
