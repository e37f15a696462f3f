// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hqr

import (
	"math"
	"math/cmplx"

	"github.com/go-logr/logr"
)

// Zhschur reduces the n×n upper Hessenberg matrix h to upper triangular
// Schur form by the shifted QR iteration with Givens rotations. If z is
// non-nil the rotations are accumulated into it, so that on entry z=Q
// from the Hessenberg reduction yields the full Schur basis. On success
// w is filled with the diagonal of the triangular factor and the strict
// lower triangle of h is set to zero.
//
// The iteration deflates the trailing eigenvalue when the last
// subdiagonal entry is negligible under the small-number test or the
// Ahues and Tisseur criterion. Each deflation window is allowed at most
// maxinner sweeps, and the total number of sweeps across all windows is
// capped by maxiter. Zhschur returns false if either cap is exhausted
// before the matrix is triangular.
func Zhschur(n int, h []complex128, ldh int, z []complex128, ldz int, w []complex128, maxiter, maxinner int, ev logr.Logger) bool {
	if n == 0 {
		return true
	}
	if n == 1 {
		w[0] = h[0]
		return true
	}

	ulp := Ulp
	smallnum := SafeMin * (float64(n) / ulp)
	var total int

	for iend := n - 1; iend >= 0; {
		if iend == 0 {
			w[0] = h[0]
			break
		}

		converged := false
		for its := 0; its <= maxinner; its++ {
			// Look for a negligible subdiagonal element.
			istart := 0
			for m := iend - 1; m >= 0; m-- {
				if zabs1(h[(m+1)*ldh+m]) <= smallnum {
					istart = m + 1
					break
				}
				tst := zabs1(h[m*ldh+m]) + zabs1(h[(m+1)*ldh+m+1])
				if tst == 0 {
					if m >= 1 {
						tst += math.Abs(real(h[m*ldh+m-1]))
					}
					if m+2 <= n-1 {
						tst += math.Abs(real(h[(m+2)*ldh+m+1]))
					}
				}
				if math.Abs(real(h[(m+1)*ldh+m])) <= ulp*tst {
					// The refined test of Ahues and Tisseur.
					ab := math.Max(zabs1(h[(m+1)*ldh+m]), zabs1(h[m*ldh+m+1]))
					ba := math.Min(zabs1(h[(m+1)*ldh+m]), zabs1(h[m*ldh+m+1]))
					aa := math.Max(zabs1(h[(m+1)*ldh+m+1]), zabs1(h[m*ldh+m]-h[(m+1)*ldh+m+1]))
					bb := math.Min(zabs1(h[(m+1)*ldh+m+1]), zabs1(h[m*ldh+m]-h[(m+1)*ldh+m+1]))
					s := aa + ab
					if ba*(ab/s) <= math.Max(smallnum, ulp*(bb*(aa/s))) {
						istart = m + 1
						break
					}
				}
			}
			if istart > 0 {
				h[istart*ldh+istart-1] = 0
			}
			if istart >= iend {
				converged = true
				break
			}
			if its == maxinner {
				break
			}
			total++
			if total > maxiter {
				return false
			}

			// Compute the shift.
			var t complex128
			switch {
			case its%30 == 10:
				// Exceptional shift from the top of the window.
				t = h[istart*ldh+istart] + complex(0.75*math.Abs(real(h[(istart+1)*ldh+istart])), 0)
				ev.V(2).Info("exceptional shift", "window", istart, "sweep", its)
			case its%30 == 20:
				t = h[iend*ldh+iend] + complex(0.75*math.Abs(real(h[iend*ldh+iend-1])), 0)
				ev.V(2).Info("exceptional shift", "window", iend, "sweep", its)
			default:
				// Wilkinson shift from the trailing 2×2 block.
				t = h[iend*ldh+iend]
				u := cmplx.Sqrt(h[(iend-1)*ldh+iend]) * cmplx.Sqrt(h[iend*ldh+iend-1])
				if u != 0 {
					x := (h[(iend-1)*ldh+iend-1] - t) * 0.5
					y := cmplx.Sqrt(x*x + u*u)
					if real(x)*real(y)+imag(x)*imag(y) < 0 {
						y = -y
					}
					t -= u * (u / (x + y))
				}
			}

			// Find the starting row of the implicit shift.
			m := istart
			var v0, v1 complex128
			for k := iend - 1; k > istart; k-- {
				h11s := h[k*ldh+k] - t
				s := zabs1(h11s) + cmplx.Abs(h[(k+1)*ldh+k])
				h11s /= complex(s, 0)
				h21 := h[(k+1)*ldh+k] / complex(s, 0)
				if math.Abs(real(h[k*ldh+k-1]))*cmplx.Abs(h21) <=
					ulp*(zabs1(h11s)*(zabs1(h[k*ldh+k])+zabs1(h[(k+1)*ldh+k+1]))) {
					m = k
					v0 = h11s
					v1 = h21
					break
				}
			}
			if m == istart {
				h11s := h[istart*ldh+istart] - t
				s := zabs1(h11s) + cmplx.Abs(h[(istart+1)*ldh+istart])
				v0 = h11s / complex(s, 0)
				v1 = h[(istart+1)*ldh+istart] / complex(s, 0)
			}

			// Create the bulge.
			cs, sn, _ := Zlartg(v0, v1)
			zrotRows(h, ldh, m, m+1, m, n, cs, sn)
			zrotCols(h, ldh, m, m+1, 0, min(m+3, iend+1), cs, sn)
			if z != nil {
				zrotCols(z, ldz, m, m+1, 0, n, cs, sn)
			}

			// Chase the bulge down to the bottom of the window.
			for i := m; i <= iend-2; i++ {
				cs, sn, r := Zlartg(h[(i+1)*ldh+i], h[(i+2)*ldh+i])
				h[(i+1)*ldh+i] = r
				h[(i+2)*ldh+i] = 0
				zrotRows(h, ldh, i+1, i+2, i+1, n, cs, sn)
				zrotCols(h, ldh, i+1, i+2, 0, min(i+4, iend+1), cs, sn)
				if z != nil {
					zrotCols(z, ldz, i+1, i+2, 0, n, cs, sn)
				}
			}
		}
		if !converged {
			return false
		}
		ev.V(2).Info("deflated", "index", iend, "sweeps", total)
		w[iend] = h[iend*ldh+iend]
		iend--
	}

	// Zero the strict lower triangle so the result is clean triangular.
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			h[i*ldh+j] = 0
		}
	}
	return true
}
