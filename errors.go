// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schur

import "errors"

var (
	// ErrNonSquare is returned when the input matrix is not square.
	ErrNonSquare = errors.New("schur: matrix is not square")

	// ErrIterationLimit is returned when the QR iteration does not
	// converge within its iteration caps. No partial result is
	// returned.
	ErrIterationLimit = errors.New("schur: QR iteration did not converge")

	// ErrInvalidOption is returned when an option carries a value the
	// decomposition cannot honor.
	ErrInvalidOption = errors.New("schur: invalid option")
)
