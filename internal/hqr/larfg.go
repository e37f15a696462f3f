// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hqr

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
)

// Dlarfg generates an elementary reflector H of order n+1 such that
//
//	H * [ alpha ]  =  [ beta ]
//	    [   x   ]     [  0   ]
//
// where H = I - tau * [1; v] * [1; v]ᵀ. On return x is overwritten with
// the vector v. If |beta| falls below SafeMin/Eps, x and alpha are
// rescaled and the norm is formed again before the reflector is built.
func Dlarfg(n int, alpha float64, x []float64, incX int) (beta, tau float64) {
	if n <= 0 {
		return alpha, 0
	}
	bi := blas64.Implementation()
	xnorm := bi.Dnrm2(n, x, incX)
	if xnorm == 0 {
		return alpha, 0
	}
	beta = -math.Copysign(math.Hypot(alpha, xnorm), alpha)
	safmin := SafeMin / Eps
	var knt int
	if math.Abs(beta) < safmin {
		rsafmn := 1 / safmin
		for math.Abs(beta) < safmin {
			knt++
			bi.Dscal(n, rsafmn, x, incX)
			beta *= rsafmn
			alpha *= rsafmn
		}
		xnorm = bi.Dnrm2(n, x, incX)
		beta = -math.Copysign(math.Hypot(alpha, xnorm), alpha)
	}
	tau = (beta - alpha) / beta
	bi.Dscal(n, 1/(alpha-beta), x, incX)
	for i := 0; i < knt; i++ {
		beta *= safmin
	}
	return beta, tau
}

// Zlarfg generates an elementary reflector H of order n+1 such that
//
//	Hᴴ * [ alpha ]  =  [ beta ]
//	     [   x   ]     [  0   ]
//
// where beta is real and H = I - tau * [1; v] * [1; v]ᴴ. On return x is
// overwritten with the vector v.
func Zlarfg(n int, alpha complex128, x []complex128, incX int) (beta, tau complex128) {
	if n < 0 {
		return alpha, 0
	}
	xnorm := cblas128.Nrm2(cblas128.Vector{N: n, Inc: incX, Data: x})
	alphr := real(alpha)
	alphi := imag(alpha)
	if xnorm == 0 && alphi == 0 {
		return alpha, 0
	}
	betaR := -math.Copysign(dlapy3(alphr, alphi, xnorm), alphr)
	safmin := SafeMin / Eps
	var knt int
	if math.Abs(betaR) < safmin {
		rsafmn := 1 / safmin
		for math.Abs(betaR) < safmin {
			knt++
			cblas128.Scal(complex(rsafmn, 0), cblas128.Vector{N: n, Inc: incX, Data: x})
			betaR *= rsafmn
			alphr *= rsafmn
			alphi *= rsafmn
		}
		xnorm = cblas128.Nrm2(cblas128.Vector{N: n, Inc: incX, Data: x})
		alpha = complex(alphr, alphi)
		betaR = -math.Copysign(dlapy3(alphr, alphi, xnorm), alphr)
	}
	tau = complex((betaR-alphr)/betaR, -alphi/betaR)
	alpha = 1 / (complex(alphr, alphi) - complex(betaR, 0))
	cblas128.Scal(alpha, cblas128.Vector{N: n, Inc: incX, Data: x})
	for i := 0; i < knt; i++ {
		betaR *= safmin
	}
	return complex(betaR, 0), tau
}

// dlapy3 returns sqrt(x² + y² + z²) avoiding unnecessary overflow.
func dlapy3(x, y, z float64) float64 {
	xa := math.Abs(x)
	ya := math.Abs(y)
	za := math.Abs(z)
	w := math.Max(xa, math.Max(ya, za))
	if w == 0 {
		return 0
	}
	xa /= w
	ya /= w
	za /= w
	return w * math.Sqrt(xa*xa+ya*ya+za*za)
}
