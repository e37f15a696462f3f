// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hqr

import (
	"math"

	"github.com/go-logr/logr"
	"gonum.org/v1/gonum/blas/blas64"
)

// Dhschur reduces the n×n upper Hessenberg matrix h to real Schur form
// by the shifted QR iteration. If z is non-nil the transformations are
// accumulated into it. On success h is upper quasi-triangular with 1×1
// and 2×2 diagonal blocks, where each 2×2 block carries a complex
// conjugate eigenvalue pair.
//
// A subdiagonal entry h[m+1,m] is treated as negligible when it is zero
// or its magnitude is below tol times the magnitude of its diagonal
// neighbours. A 2×2 trailing block is deflated in place. The default
// shift is the Francis double shift from the trailing 2×2 block, with
// an exceptional real single shift substituted every tenth sweep
// without a deflation; if rayleigh is true a single Rayleigh quotient
// shift is used on every sweep instead. Dhschur returns false if maxiter sweeps pass
// before the matrix is quasi-triangular.
func Dhschur(n int, h []float64, ldh int, z []float64, ldz int, tol float64, maxiter int, rayleigh bool, ev logr.Logger) bool {
	if n <= 1 {
		return true
	}

	var iter, since int
	for iend := n - 1; iend > 1; {
		// Look for a negligible subdiagonal entry splitting the window.
		istart := 0
		for m := iend - 1; m >= 0; m-- {
			if h[(m+1)*ldh+m] == 0 || math.Abs(h[(m+1)*ldh+m]) < tol*(math.Abs(h[m*ldh+m])+math.Abs(h[(m+1)*ldh+m+1])) {
				istart = m + 1
				h[(m+1)*ldh+m] = 0
				break
			}
			if m > 0 && (h[m*ldh+m-1] == 0 || math.Abs(h[m*ldh+m-1]) < tol*(math.Abs(h[(m-1)*ldh+m-1])+math.Abs(h[m*ldh+m]))) {
				istart = m
				h[m*ldh+m-1] = 0
				break
			}
		}

		switch {
		case istart >= iend:
			// 1×1 block converged.
			ev.V(2).Info("deflated", "size", 1, "index", iend, "sweeps", iter)
			iend--
			since = 0
			continue
		case istart+1 == iend:
			// 2×2 block converged; it stays in place.
			ev.V(2).Info("deflated", "size", 2, "index", iend, "sweeps", iter)
			iend -= 2
			since = 0
			continue
		}

		iter++
		since++
		if iter > maxiter {
			return false
		}

		hmm := h[iend*ldh+iend]
		hm1m1 := h[(iend-1)*ldh+iend-1]
		tr := hmm + hm1m1
		det := hmm*hm1m1 - h[iend*ldh+iend-1]*h[(iend-1)*ldh+iend]
		if tr == 0 {
			tr = Eps
		}

		switch {
		case rayleigh:
			dsingleShift(n, h, ldh, z, ldz, hmm, istart, iend)
		case since%10 == 0:
			// Exceptional real single shift.
			var sigma float64
			disc := tr*tr - 4*det
			if disc > 0 {
				sq := math.Sqrt(disc)
				r1 := (tr + sq) / 2
				r2 := (tr - sq) / 2
				if math.Abs(r1-hmm) < math.Abs(r2-hmm) {
					sigma = r1
				} else {
					sigma = r2
				}
			} else {
				sigma = tr / 2
			}
			ev.V(2).Info("exceptional shift", "sweep", iter)
			dsingleShift(n, h, ldh, z, ldz, sigma, istart, iend)
		default:
			ddoubleShift(n, h, ldh, z, ldz, tr, det, istart, iend)
		}
	}
	return true
}

// dsingleShift performs one single-shift QR sweep with shift sigma on
// the window [istart, iend] of the Hessenberg matrix h.
func dsingleShift(n int, h []float64, ldh int, z []float64, ldz int, sigma float64, istart, iend int) {
	bi := blas64.Implementation()

	var htmp float64
	if istart+2 < n {
		htmp = h[(istart+2)*ldh+istart]
		h[(istart+2)*ldh+istart] = 0
	}

	cs, sn, _ := Dlartg(h[istart*ldh+istart]-sigma, h[(istart+1)*ldh+istart])
	bi.Drot(n-istart, h[istart*ldh+istart:], 1, h[(istart+1)*ldh+istart:], 1, cs, sn)
	nr := min(istart+3, n)
	bi.Drot(nr, h[istart:], ldh, h[istart+1:], ldh, cs, sn)
	if z != nil {
		bi.Drot(n, z[istart:], ldz, z[istart+1:], ldz, cs, sn)
	}

	for i := istart; i <= iend-2; i++ {
		cs, sn, _ = Dlartg(h[(i+1)*ldh+i], h[(i+2)*ldh+i])
		bi.Drot(n-i, h[(i+1)*ldh+i:], 1, h[(i+2)*ldh+i:], 1, cs, sn)
		h[(i+2)*ldh+i] = htmp
		if i+3 < n {
			htmp = h[(i+3)*ldh+i+1]
			h[(i+3)*ldh+i+1] = 0
		}
		nr = min(i+4, n)
		bi.Drot(nr, h[i+1:], ldh, h[i+2:], ldh, cs, sn)
		if z != nil {
			bi.Drot(n, z[i+1:], ldz, z[i+2:], ldz, cs, sn)
		}
	}
}

// ddoubleShift performs one Francis double-shift QR sweep on the window
// [istart, iend] of the Hessenberg matrix h, with the implicit shift
// polynomial H² - tr·H + det·I taken from the trailing 2×2 block.
func ddoubleShift(n int, h []float64, ldh int, z []float64, ldz int, tr, det float64, istart, iend int) {
	bi := blas64.Implementation()

	var htmp11, htmp21 float64
	if istart+2 < n {
		htmp11 = h[(istart+2)*ldh+istart]
		h[(istart+2)*ldh+istart] = 0
	}
	if istart+3 < n {
		htmp21 = h[(istart+3)*ldh+istart]
		h[(istart+3)*ldh+istart] = 0
		h[(istart+3)*ldh+istart+1] = 0
	}

	h11 := h[istart*ldh+istart]
	h21 := h[(istart+1)*ldh+istart]
	p0 := h11*h11 + h[istart*ldh+istart+1]*h21 - tr*h11 + det
	p1 := h21 * (h11 + h[(istart+1)*ldh+istart+1] - tr)
	p2 := h21 * h[(istart+2)*ldh+istart+1]

	cs1, sn1, r := Dlartg(p0, p1)
	cs2, sn2, _ := Dlartg(r, p2)

	bi.Drot(n-istart, h[istart*ldh+istart:], 1, h[(istart+1)*ldh+istart:], 1, cs1, sn1)
	bi.Drot(n-istart, h[istart*ldh+istart:], 1, h[(istart+2)*ldh+istart:], 1, cs2, sn2)
	nr := min(istart+4, n)
	bi.Drot(nr, h[istart:], ldh, h[istart+1:], ldh, cs1, sn1)
	bi.Drot(nr, h[istart:], ldh, h[istart+2:], ldh, cs2, sn2)
	if z != nil {
		bi.Drot(n, z[istart:], ldz, z[istart+1:], ldz, cs1, sn1)
		bi.Drot(n, z[istart:], ldz, z[istart+2:], ldz, cs2, sn2)
	}

	for i := istart; i <= iend-2; i++ {
		for j := 1; j <= 2; j++ {
			if i+j+1 > iend {
				break
			}
			cs, sn, _ := Dlartg(h[(i+1)*ldh+i], h[(i+j+1)*ldh+i])
			bi.Drot(n-i, h[(i+1)*ldh+i:], 1, h[(i+j+1)*ldh+i:], 1, cs, sn)
			h[(i+j+1)*ldh+i] = htmp11
			htmp11 = htmp21
			if i+4 <= iend {
				h[(i+4)*ldh+i+j] = 0
			}
			nr = min(i+j+3, n)
			bi.Drot(nr, h[i+1:], ldh, h[i+j+1:], ldh, cs, sn)
			if z != nil {
				bi.Drot(n, z[i+1:], ldz, z[i+j+1:], ldz, cs, sn)
			}
		}
	}
}

// Dlanv2 computes the Schur factorization of a real 2×2 matrix
//
//	[ a b ]
//	[ c d ]
//
// standardizing the block so that on return either cc is zero, or
// aa == dd and bb*cc < 0 with the block carrying the conjugate pair
// rt1r ± i·rt1i. cs and sn are the cosine and sine of the rotation
// applied.
func Dlanv2(a, b, c, d float64) (aa, bb, cc, dd, rt1r, rt1i, rt2r, rt2i, cs, sn float64) {
	switch {
	case c == 0:
		cs = 1
		sn = 0
	case b == 0:
		// Swap rows and columns.
		cs = 0
		sn = 1
		a, b, c, d = d, -c, 0, a
	case a-d == 0 && math.Signbit(b) != math.Signbit(c):
		cs = 1
		sn = 0
	default:
		temp := a - d
		p := temp / 2
		bcmax := math.Max(math.Abs(b), math.Abs(c))
		bcmis := math.Min(math.Abs(b), math.Abs(c))
		if b*c < 0 {
			bcmis = -bcmis
		}
		scale := math.Max(math.Abs(p), bcmax)
		zz := p/scale*p + bcmax/scale*bcmis
		if zz >= 4*Ulp {
			// Real eigenvalues, compute a and d.
			if p > 0 {
				zz = p + math.Sqrt(scale)*math.Sqrt(zz)
			} else {
				zz = p - math.Sqrt(scale)*math.Sqrt(zz)
			}
			tau := math.Hypot(c, zz)
			cs = zz / tau
			sn = c / tau
			a = d + zz
			d -= bcmax / zz * bcmis
			b -= c
			c = 0
		} else {
			// Complex eigenvalues, or real and almost equal.
			sigma := b + c
			tau := math.Hypot(sigma, temp)
			cs = math.Sqrt((1 + math.Abs(sigma)/tau) / 2)
			sn = -p / (tau * cs)
			if sigma < 0 {
				sn = -sn
			}
			// Apply the rotation from both sides.
			aa := a*cs + b*sn
			bb := -a*sn + b*cs
			cc := c*cs + d*sn
			dd := -c*sn + d*cs
			a = aa*cs + cc*sn
			b = bb*cs + dd*sn
			c = -aa*sn + cc*cs
			d = -bb*sn + dd*cs
			temp = (a + d) / 2
			a = temp
			d = temp
			if c != 0 {
				if b != 0 {
					if math.Signbit(b) == math.Signbit(c) {
						// Real eigenvalues, reduce to upper triangular.
						sab := math.Sqrt(math.Abs(b))
						sac := math.Sqrt(math.Abs(c))
						p = sab * sac
						if c < 0 {
							p = -p
						}
						tau = 1 / math.Sqrt(math.Abs(b+c))
						a = temp + p
						d = temp - p
						b -= c
						c = 0
						cs1 := sab * tau
						sn1 := sac * tau
						cs, sn = cs*cs1-sn*sn1, cs*sn1+sn*cs1
					}
				} else {
					b, c = -c, 0
					cs, sn = -sn, cs
				}
			}
		}
	}

	rt1r = a
	rt2r = d
	if c != 0 {
		rt1i = math.Sqrt(math.Abs(b)) * math.Sqrt(math.Abs(c))
		rt2i = -rt1i
	}
	return a, b, c, d, rt1r, rt1i, rt2r, rt2i, cs, sn
}

// Dstandardize walks the diagonal of the quasi-triangular matrix h,
// zeroing negligible subdiagonal entries, rotating every surviving 2×2
// block into standard form with Dlanv2, and writing the eigenvalues
// into wr and wi. Complex conjugate pairs appear consecutively with the
// positive imaginary part first. The accumulated rotations are applied
// to z when it is non-nil.
func Dstandardize(n int, h []float64, ldh int, z []float64, ldz int, wr, wi []float64, tol float64) {
	bi := blas64.Implementation()
	for i := 2; i < n; i++ {
		for j := 0; j < i-1; j++ {
			h[i*ldh+j] = 0
		}
	}
	for i := 0; i < n; {
		if i == n-1 || h[(i+1)*ldh+i] == 0 ||
			math.Abs(h[(i+1)*ldh+i]) < tol*(math.Abs(h[i*ldh+i])+math.Abs(h[(i+1)*ldh+i+1])) {
			if i < n-1 {
				h[(i+1)*ldh+i] = 0
			}
			wr[i] = h[i*ldh+i]
			wi[i] = 0
			i++
			continue
		}

		aa, bb, cc, dd, rt1r, rt1i, rt2r, rt2i, cs, sn := Dlanv2(
			h[i*ldh+i], h[i*ldh+i+1], h[(i+1)*ldh+i], h[(i+1)*ldh+i+1])
		h[i*ldh+i] = aa
		h[i*ldh+i+1] = bb
		h[(i+1)*ldh+i] = cc
		h[(i+1)*ldh+i+1] = dd

		if n-i-2 > 0 {
			bi.Drot(n-i-2, h[i*ldh+i+2:], 1, h[(i+1)*ldh+i+2:], 1, cs, sn)
		}
		if i > 0 {
			bi.Drot(i, h[i:], ldh, h[i+1:], ldh, cs, sn)
		}
		if z != nil {
			bi.Drot(n, z[i:], ldz, z[i+1:], ldz, cs, sn)
		}

		wr[i] = rt1r
		wi[i] = rt1i
		wr[i+1] = rt2r
		wi[i+1] = rt2i
		if cc == 0 {
			// The block split into two real eigenvalues.
			wi[i] = 0
			wi[i+1] = 0
		}
		i += 2
	}
}
