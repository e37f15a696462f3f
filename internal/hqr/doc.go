// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hqr implements the Hessenberg QR kernels behind the schur
// package: reduction to Hessenberg form, the shifted QR iterations for
// real and complex matrices, and the triangular eigenvector solver.
//
// All routines work on flat row-major slices with an explicit leading
// dimension and use 0-based indexing throughout. They perform no
// argument validation beyond what is needed for correctness; callers
// are expected to pass consistent dimensions.
package hqr
