// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schur

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/jamestjsp/schur/internal/hqr"
)

// Decompose computes the real Schur decomposition of the square matrix
// a,
//
//	A = Z * T * Zᵀ
//
// where T is upper quasi-triangular with 1×1 and 2×2 diagonal blocks
// and Z is orthogonal. The eigenvalues of A are returned in w in the
// order in which their blocks appear on the diagonal of T; a complex
// conjugate pair appears consecutively with the positive imaginary part
// first. If WantVectors(false) is supplied z is nil.
//
// a is not modified. Decompose returns ErrNonSquare if a is not
// square, ErrInvalidOption for an unusable option value, and
// ErrIterationLimit if the QR iteration fails to converge.
func Decompose(a *mat.Dense, opts ...Option) (t, z *mat.Dense, w []complex128, err error) {
	r, c := a.Dims()
	if r != c {
		return nil, nil, nil, ErrNonSquare
	}
	n := r
	cfg, err := newConfig(n, opts)
	if err != nil {
		return nil, nil, nil, err
	}

	t = mat.DenseCopyOf(a)
	raw := t.RawMatrix()
	h, ldh := raw.Data, raw.Stride

	// Scale the matrix into a safe range.
	smlnum := math.Sqrt(hqr.SafeMin) / hqr.Ulp
	bignum := 1 / smlnum
	anrm := hqr.Dlamax(n, n, h, ldh)
	var scaled bool
	var cscale float64
	if cfg.scale {
		if anrm > 0 && anrm < smlnum {
			scaled = true
			cscale = smlnum
		} else if anrm > bignum {
			scaled = true
			cscale = bignum
		}
		if scaled {
			hqr.Dlascl(anrm, cscale, n, n, h, ldh)
		}
	}

	// Reduce to upper Hessenberg form and accumulate the basis.
	tau := make([]float64, max(n-1, 1))
	work := make([]float64, 2*n)
	hqr.Dgehd2(n, h, ldh, tau, work)

	var zd []float64
	var ldz int
	if cfg.wantZ {
		z = mat.NewDense(n, n, nil)
		zraw := z.RawMatrix()
		zd, ldz = zraw.Data, zraw.Stride
		hqr.Dorghr(n, h, ldh, tau, zd, ldz, work)
	}
	// Clear the reflector storage below the first subdiagonal.
	for i := 2; i < n; i++ {
		for j := 0; j < i-1; j++ {
			h[i*ldh+j] = 0
		}
	}

	if !hqr.Dhschur(n, h, ldh, zd, ldz, cfg.tol, cfg.maxiter, cfg.shift == Rayleigh, cfg.log) {
		return nil, nil, nil, ErrIterationLimit
	}

	wr := make([]float64, n)
	wi := make([]float64, n)
	hqr.Dstandardize(n, h, ldh, zd, ldz, wr, wi, cfg.tol)

	if scaled {
		hqr.Dlascl(cscale, anrm, n, n, h, ldh)
		hqr.Dlascl(cscale, anrm, n, 1, wr, 1)
		hqr.Dlascl(cscale, anrm, n, 1, wi, 1)
	}

	w = make([]complex128, n)
	for i := range w {
		w[i] = complex(wr[i], wi[i])
	}
	return t, z, w, nil
}

// Values computes the eigenvalues of the square real matrix a without
// accumulating the Schur basis.
func Values(a *mat.Dense, opts ...Option) ([]complex128, error) {
	opts = append(opts[:len(opts):len(opts)], WantVectors(false))
	_, _, w, err := Decompose(a, opts...)
	return w, err
}
