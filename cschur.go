// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schur

import (
	"math"

	"github.com/jamestjsp/schur/internal/hqr"
	"gonum.org/v1/gonum/mat"
)

// DecomposeCmplx computes the complex Schur decomposition of the
// square matrix a,
//
//	A = Z * T * Zᴴ
//
// where T is upper triangular and Z is unitary. The eigenvalues of A
// are the diagonal of T and are returned in w in diagonal order. If
// WantVectors(false) is supplied z is nil.
//
// a is not modified. DecomposeCmplx returns ErrNonSquare if a is not
// square, ErrInvalidOption for an unusable option value, and
// ErrIterationLimit if the QR iteration fails to converge.
func DecomposeCmplx(a *mat.CDense, opts ...Option) (t, z *mat.CDense, w []complex128, err error) {
	r, c := a.Dims()
	if r != c {
		return nil, nil, nil, ErrNonSquare
	}
	n := r
	cfg, err := newConfig(n, opts)
	if err != nil {
		return nil, nil, nil, err
	}

	t = mat.NewCDense(n, n, nil)
	t.Copy(a)

	raw := t.RawCMatrix()
	h, ldh := raw.Data, raw.Stride

	// Scale the matrix into a safe range.
	smlnum := math.Sqrt(hqr.SafeMin) / hqr.Ulp
	bignum := 1 / smlnum
	anrm := hqr.Zlamax(n, n, h, ldh)
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
			hqr.Zlascl(anrm, cscale, n, n, h, ldh)
		}
	}

	// Reduce to upper Hessenberg form and accumulate the basis.
	tau := make([]complex128, max(n-1, 1))
	work := make([]complex128, 2*n)
	hqr.Zgehd2(n, h, ldh, tau, work)

	var zd []complex128
	var ldz int
	if cfg.wantZ {
		z = mat.NewCDense(n, n, nil)
		zraw := z.RawCMatrix()
		zd, ldz = zraw.Data, zraw.Stride
		hqr.Zunghr(n, h, ldh, tau, zd, ldz, work)
	}
	// Clear the reflector storage below the first subdiagonal.
	for i := 2; i < n; i++ {
		for j := 0; j < i-1; j++ {
			h[i*ldh+j] = 0
		}
	}

	w = make([]complex128, n)
	if !hqr.Zhschur(n, h, ldh, zd, ldz, w, cfg.maxiter, cfg.maxinner, cfg.log) {
		return nil, nil, nil, ErrIterationLimit
	}

	if scaled {
		hqr.Zlascl(cscale, anrm, n, n, h, ldh)
		hqr.Zlascl(cscale, anrm, n, 1, w, 1)
	}
	return t, z, w, nil
}

// ValuesCmplx computes the eigenvalues of the square complex matrix a
// without accumulating the Schur basis.
func ValuesCmplx(a *mat.CDense, opts ...Option) ([]complex128, error) {
	opts = append(opts[:len(opts):len(opts)], WantVectors(false))
	_, _, w, err := DecomposeCmplx(a, opts...)
	return w, err
}
