// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schur computes Schur decompositions of dense real and complex
// matrices.
//
// For a real matrix A, Decompose returns an orthogonal Z and an upper
// quasi-triangular T with A = Z T Zᵀ, where the 1×1 and 2×2 diagonal
// blocks of T carry the real eigenvalues and the complex conjugate
// pairs. For a complex matrix, DecomposeCmplx returns a unitary Z and
// an upper triangular T with A = Z T Zᴴ. Values and ValuesCmplx skip
// the accumulation of Z when only the eigenvalues are needed, and
// Vectors recovers the right eigenvectors from a complex factorization.
//
// Inputs are never modified; all results are freshly allocated. The
// decomposition is tuned by functional options, for example
//
//	t, z, w, err := schur.Decompose(a, schur.ShiftPolicy(schur.Rayleigh))
package schur
