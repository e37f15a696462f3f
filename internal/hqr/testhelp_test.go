// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hqr

import (
	"math"
	"math/cmplx"
	"math/rand/v2"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
)

// randomGeneral returns an n×n matrix with standard normal entries.
func randomGeneral(n int, rnd *rand.Rand) []float64 {
	a := make([]float64, n*n)
	for i := range a {
		a[i] = rnd.NormFloat64()
	}
	return a
}

// randomCGeneral returns an n×n complex matrix with standard normal
// real and imaginary parts.
func randomCGeneral(n int, rnd *rand.Rand) []complex128 {
	a := make([]complex128, n*n)
	for i := range a {
		a[i] = complex(rnd.NormFloat64(), rnd.NormFloat64())
	}
	return a
}

// randomHessenberg returns an n×n upper Hessenberg matrix with
// standard normal entries.
func randomHessenberg(n int, rnd *rand.Rand) []float64 {
	a := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := max(0, i-1); j < n; j++ {
			a[i*n+j] = rnd.NormFloat64()
		}
	}
	return a
}

// randomCHessenberg returns an n×n complex upper Hessenberg matrix.
func randomCHessenberg(n int, rnd *rand.Rand) []complex128 {
	a := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := max(0, i-1); j < n; j++ {
			a[i*n+j] = complex(rnd.NormFloat64(), rnd.NormFloat64())
		}
	}
	return a
}

func eye(n int) []float64 {
	a := make([]float64, n*n)
	for i := 0; i < n; i++ {
		a[i*n+i] = 1
	}
	return a
}

func ceye(n int) []complex128 {
	a := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		a[i*n+i] = 1
	}
	return a
}

func cloneSlice(a []float64) []float64 {
	b := make([]float64, len(a))
	copy(b, a)
	return b
}

func cloneCSlice(a []complex128) []complex128 {
	b := make([]complex128, len(a))
	copy(b, a)
	return b
}

// maxAbsDiff returns max |a_i - b_i|.
func maxAbsDiff(a, b []float64) float64 {
	var v float64
	for i := range a {
		v = math.Max(v, math.Abs(a[i]-b[i]))
	}
	return v
}

// maxCAbsDiff returns max |a_i - b_i| for complex slices.
func maxCAbsDiff(a, b []complex128) float64 {
	var v float64
	for i := range a {
		v = math.Max(v, cmplx.Abs(a[i]-b[i]))
	}
	return v
}

// residualSimilarity returns max |A - Z*T*Zᵀ| for row-major n×n
// matrices with stride n.
func residualSimilarity(n int, a, tm, z []float64) float64 {
	general := func(d []float64) blas64.General {
		return blas64.General{Rows: n, Cols: n, Stride: n, Data: d}
	}
	zt := make([]float64, n*n)
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, general(z), general(tm), 0, general(zt))
	ztzt := make([]float64, n*n)
	blas64.Gemm(blas.NoTrans, blas.Trans, 1, general(zt), general(z), 0, general(ztzt))
	return maxAbsDiff(a, ztzt)
}

// residualCSimilarity returns max |A - Z*T*Zᴴ| for row-major n×n
// complex matrices with stride n.
func residualCSimilarity(n int, a, tm, z []complex128) float64 {
	general := func(d []complex128) cblas128.General {
		return cblas128.General{Rows: n, Cols: n, Stride: n, Data: d}
	}
	zt := make([]complex128, n*n)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, general(z), general(tm), 0, general(zt))
	ztzh := make([]complex128, n*n)
	cblas128.Gemm(blas.NoTrans, blas.ConjTrans, 1, general(zt), general(z), 0, general(ztzh))
	return maxCAbsDiff(a, ztzh)
}

// residualOrthogonal returns max |I - Z*Zᵀ|.
func residualOrthogonal(n int, z []float64) float64 {
	zzt := make([]float64, n*n)
	g := blas64.General{Rows: n, Cols: n, Stride: n, Data: z}
	blas64.Gemm(blas.NoTrans, blas.Trans, 1, g, g, 0, blas64.General{Rows: n, Cols: n, Stride: n, Data: zzt})
	return maxAbsDiff(eye(n), zzt)
}

// residualUnitary returns max |I - Z*Zᴴ|.
func residualUnitary(n int, z []complex128) float64 {
	zzh := make([]complex128, n*n)
	g := cblas128.General{Rows: n, Cols: n, Stride: n, Data: z}
	cblas128.Gemm(blas.NoTrans, blas.ConjTrans, 1, g, g, 0, cblas128.General{Rows: n, Cols: n, Stride: n, Data: zzh})
	return maxCAbsDiff(ceye(n), zzh)
}

// isQuasiTriangular reports whether the matrix is upper quasi-triangular
// with no two adjacent nonzero subdiagonal entries.
func isQuasiTriangular(n int, a []float64) bool {
	for i := 2; i < n; i++ {
		for j := 0; j < i-1; j++ {
			if a[i*n+j] != 0 {
				return false
			}
		}
	}
	for i := 1; i < n-1; i++ {
		if a[i*n+i-1] != 0 && a[(i+1)*n+i] != 0 {
			return false
		}
	}
	return true
}

// isUpperTriangular reports whether the complex matrix has a zero
// strict lower triangle.
func isUpperTriangular(n int, a []complex128) bool {
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if a[i*n+j] != 0 {
				return false
			}
		}
	}
	return true
}
