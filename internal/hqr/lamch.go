// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hqr

import "math"

// Machine constants for IEEE 754 double precision.
const (
	// Eps is the machine epsilon in the unit roundoff sense, half the
	// spacing of floating point numbers at 1.
	Eps = 0x1p-53
	// Ulp is the spacing between adjacent floating point numbers at 1.
	Ulp = 2 * Eps
	// SafeMin is the smallest normal positive number such that 1/SafeMin
	// does not overflow.
	SafeMin = 0x1p-1022
)

var (
	safmn2 = math.Pow(2, math.Trunc(math.Log2(SafeMin/Eps)/2))
	safmx2 = 1 / safmn2
)

// zabs1 returns |real(z)| + |imag(z)|, the L¹ magnitude used in the
// deflation and scaling tests.
func zabs1(z complex128) float64 {
	return math.Abs(real(z)) + math.Abs(imag(z))
}
