// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hqr

import (
	"math"
	"math/cmplx"
)

// Dlartg generates a plane rotation with real cosine and real sine such
// that
//
//	[ cs  sn ] [ f ]   [ r ]
//	[-sn  cs ] [ g ] = [ 0 ]
//
// with cs² + sn² = 1. The computation is guarded against overflow and
// underflow by rescaling f and g into a safe range before forming the
// hypotenuse.
func Dlartg(f, g float64) (cs, sn, r float64) {
	if g == 0 {
		return 1, 0, f
	}
	if f == 0 {
		return 0, 1, g
	}

	f1 := f
	g1 := g
	scale := math.Max(math.Abs(f1), math.Abs(g1))
	switch {
	case scale >= safmx2:
		var count int
		for scale >= safmx2 {
			count++
			f1 *= safmn2
			g1 *= safmn2
			scale = math.Max(math.Abs(f1), math.Abs(g1))
		}
		r = math.Hypot(f1, g1)
		cs = f1 / r
		sn = g1 / r
		for i := 0; i < count; i++ {
			r *= safmx2
		}
	case scale <= safmn2:
		var count int
		for scale <= safmn2 {
			count++
			f1 *= safmx2
			g1 *= safmx2
			scale = math.Max(math.Abs(f1), math.Abs(g1))
		}
		r = math.Hypot(f1, g1)
		cs = f1 / r
		sn = g1 / r
		for i := 0; i < count; i++ {
			r *= safmn2
		}
	default:
		r = math.Hypot(f1, g1)
		cs = f1 / r
		sn = g1 / r
	}
	if math.Abs(f) > math.Abs(g) && cs < 0 {
		cs = -cs
		sn = -sn
		r = -r
	}
	return cs, sn, r
}

// Zlartg generates a plane rotation with real cosine and complex sine
// such that
//
//	[ cs         sn ] [ f ]   [ r ]
//	[-conj(sn)   cs ] [ g ] = [ 0 ]
//
// with cs² + |sn|² = 1 and cs ≥ 0.
func Zlartg(f, g complex128) (cs float64, sn, r complex128) {
	if g == 0 {
		return 1, 0, f
	}
	if f == 0 {
		ga := cmplx.Abs(g)
		return 0, complex(1/ga, 0) * cmplx.Conj(g), complex(ga, 0)
	}

	scale := math.Max(math.Max(math.Abs(real(f)), math.Abs(imag(f))),
		math.Max(math.Abs(real(g)), math.Abs(imag(g))))
	fs := f / complex(scale, 0)
	gs := g / complex(scale, 0)
	fa := cmplx.Abs(fs)
	ga := cmplx.Abs(gs)
	den := math.Hypot(fa, ga)
	u := fs / complex(fa, 0)
	cs = fa / den
	sn = u * cmplx.Conj(gs) / complex(den, 0)
	r = u * complex(den*scale, 0)
	return cs, sn, r
}

// zrotRows applies the rotation generated by Zlartg to rows i1 and i2
// of the matrix a, restricted to columns [jlo, jhi):
//
//	a[i1, j] ←  cs·a[i1, j] + sn·a[i2, j]
//	a[i2, j] ← -conj(sn)·a[i1, j] + cs·a[i2, j]
func zrotRows(a []complex128, lda, i1, i2, jlo, jhi int, cs float64, sn complex128) {
	ccs := complex(cs, 0)
	csn := cmplx.Conj(sn)
	for j := jlo; j < jhi; j++ {
		x := a[i1*lda+j]
		y := a[i2*lda+j]
		a[i1*lda+j] = ccs*x + sn*y
		a[i2*lda+j] = -csn*x + ccs*y
	}
}

// zrotCols applies the conjugate transpose of the rotation generated by
// Zlartg to columns j1 and j2 of the matrix a, restricted to rows
// [ilo, ihi):
//
//	a[i, j1] ←  cs·a[i, j1] + conj(sn)·a[i, j2]
//	a[i, j2] ← -sn·a[i, j1] + cs·a[i, j2]
func zrotCols(a []complex128, lda, j1, j2, ilo, ihi int, cs float64, sn complex128) {
	ccs := complex(cs, 0)
	csn := cmplx.Conj(sn)
	for i := ilo; i < ihi; i++ {
		x := a[i*lda+j1]
		y := a[i*lda+j2]
		a[i*lda+j1] = ccs*x + csn*y
		a[i*lda+j2] = -sn*x + ccs*y
	}
}
