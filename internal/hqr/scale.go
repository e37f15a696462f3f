// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hqr

import (
	"math"
	"math/cmplx"
)

// Dlamax returns the maximum absolute value of the elements of the m×n
// matrix a.
func Dlamax(m, n int, a []float64, lda int) float64 {
	var v float64
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v = math.Max(v, math.Abs(a[i*lda+j]))
		}
	}
	return v
}

// Zlamax returns the maximum modulus of the elements of the m×n complex
// matrix a.
func Zlamax(m, n int, a []complex128, lda int) float64 {
	var v float64
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v = math.Max(v, cmplx.Abs(a[i*lda+j]))
		}
	}
	return v
}

// Dlascl multiplies the m×n matrix a by cto/cfrom without over- or
// underflow, applying the ratio in clamped partial steps when it cannot
// be represented directly.
func Dlascl(cfrom, cto float64, m, n int, a []float64, lda int) {
	smlnum := SafeMin
	bignum := 1 / smlnum
	cfromc := cfrom
	ctoc := cto
	for {
		cfrom1 := cfromc * smlnum
		var mul float64
		var done bool
		if cfrom1 == cfromc {
			// cfromc is infinity; the multiplier is a NaN or zero as
			// appropriate.
			mul = ctoc / cfromc
			done = true
		} else {
			cto1 := ctoc / bignum
			if cto1 == ctoc {
				mul = ctoc
				done = true
				cfromc = 1
			} else if math.Abs(cfrom1) > math.Abs(ctoc) && ctoc != 0 {
				mul = smlnum
				done = false
				cfromc = cfrom1
			} else if math.Abs(cto1) > math.Abs(cfromc) {
				mul = bignum
				done = false
				ctoc = cto1
			} else {
				mul = ctoc / cfromc
				done = true
			}
		}
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				a[i*lda+j] *= mul
			}
		}
		if done {
			return
		}
	}
}

// Zlascl multiplies the m×n complex matrix a by cto/cfrom without over-
// or underflow.
func Zlascl(cfrom, cto float64, m, n int, a []complex128, lda int) {
	smlnum := SafeMin
	bignum := 1 / smlnum
	cfromc := cfrom
	ctoc := cto
	for {
		cfrom1 := cfromc * smlnum
		var mul float64
		var done bool
		if cfrom1 == cfromc {
			mul = ctoc / cfromc
			done = true
		} else {
			cto1 := ctoc / bignum
			if cto1 == ctoc {
				mul = ctoc
				done = true
				cfromc = 1
			} else if math.Abs(cfrom1) > math.Abs(ctoc) && ctoc != 0 {
				mul = smlnum
				done = false
				cfromc = cfrom1
			} else if math.Abs(cto1) > math.Abs(cfromc) {
				mul = bignum
				done = false
				ctoc = cto1
			} else {
				mul = ctoc / cfromc
				done = true
			}
		}
		cm := complex(mul, 0)
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				a[i*lda+j] *= cm
			}
		}
		if done {
			return
		}
	}
}
