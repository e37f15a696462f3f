// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schur

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/lapack"
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"
	"gonum.org/v1/gonum/mat"
)

const machEps = 0x1p-53

func randomDense(n int, rnd *rand.Rand) *mat.Dense {
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, rnd.NormFloat64())
		}
	}
	return a
}

func TestDecomposeRandom(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, n := range []int{1, 2, 3, 4, 5, 6, 10, 20, 50} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := randomDense(n, rnd)
			aCopy := mat.DenseCopyOf(a)

			tm, z, w, err := Decompose(a)
			if err != nil {
				t.Fatalf("Decompose failed: %v", err)
			}
			if !mat.Equal(a, aCopy) {
				t.Error("input matrix was modified")
			}
			checkRealSchur(t, a, tm, z, w)
		})
	}
}

func TestDecomposeSpecial(t *testing.T) {
	for _, tc := range []struct {
		name string
		a    *mat.Dense
	}{
		{"Zero(5)", mat.NewDense(5, 5, nil)},
		{"Identity(6)", identity(6)},
		{"UpperTriangular(7)", upperTriangular(7)},
		{"Wilkinson(4)", mat.NewDense(4, 4, []float64{
			0.9, 1, 0, 0,
			0, 0.9, 1, 0,
			0, 0, 0.9, 1,
			0, 0, 0, 0.9,
		})},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tm, z, w, err := Decompose(tc.a)
			if err != nil {
				t.Fatalf("Decompose failed: %v", err)
			}
			checkRealSchur(t, tc.a, tm, z, w)
		})
	}
}

func TestDecomposeScalar(t *testing.T) {
	a := mat.NewDense(1, 1, []float64{7})
	tm, z, w, err := Decompose(a)
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	if tm.At(0, 0) != 7 {
		t.Errorf("T = %v, want [[7]]", tm.At(0, 0))
	}
	if math.Abs(math.Abs(z.At(0, 0))-1) > machEps {
		t.Errorf("|Z| = %v, want 1", math.Abs(z.At(0, 0)))
	}
	if w[0] != 7 {
		t.Errorf("w = %v, want [7]", w)
	}
}

func TestDecomposeRotation(t *testing.T) {
	// A plane rotation has the purely imaginary pair ±i and must come
	// out as a single standardized 2×2 block.
	a := mat.NewDense(2, 2, []float64{
		0, 1,
		-1, 0,
	})
	tm, z, w, err := Decompose(a)
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	checkRealSchur(t, a, tm, z, w)
	if tm.At(1, 0) == 0 {
		t.Error("subdiagonal entry is zero, expected one 2×2 block")
	}
	if tm.At(0, 0) != tm.At(1, 1) {
		t.Errorf("block diagonal %v, %v not equal", tm.At(0, 0), tm.At(1, 1))
	}
	wantSpectrum(t, w, []complex128{1i, -1i}, 1e-14)
}

func TestDecomposeNearDiagonal(t *testing.T) {
	// Small off-diagonal perturbations of diag(5, 2, 9) leave the
	// spectrum within O(eps) of the diagonal.
	a := mat.NewDense(3, 3, []float64{
		5, 1e-14, 1e-14,
		1e-14, 2, 1e-14,
		1e-14, 1e-14, 9,
	})
	tm, z, w, err := Decompose(a)
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	checkRealSchur(t, a, tm, z, w)
	wantSpectrum(t, w, []complex128{5, 2, 9}, 1e-12)
}

func TestDecomposeCompanion(t *testing.T) {
	// Companion matrix of x⁴ - 1, spectrum {1, -1, i, -i}.
	a := mat.NewDense(4, 4, []float64{
		0, 0, 0, 1,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	})
	tm, z, w, err := Decompose(a)
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	checkRealSchur(t, a, tm, z, w)
	wantSpectrum(t, w, []complex128{1, -1, 1i, -1i}, 1e-10)
}

func TestDecomposeHilbert(t *testing.T) {
	// Eigenvalues of the 5×5 Hilbert matrix cross-checked against the
	// symmetric eigensolver.
	const n = 5
	h := mat.NewDense(n, n, nil)
	hd := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := 1 / float64(i+j+1)
			h.Set(i, j, v)
			hd[i*n+j] = v
		}
	}

	var impl lapackgonum.Implementation
	work := make([]float64, 1)
	impl.Dsyev(lapack.EVNone, blas.Upper, n, hd, n, make([]float64, n), work, -1)
	work = make([]float64, int(work[0]))
	ref := make([]float64, n)
	if ok := impl.Dsyev(lapack.EVNone, blas.Upper, n, hd, n, ref, work, len(work)); !ok {
		t.Fatal("reference eigensolver failed")
	}

	w, err := Values(h)
	if err != nil {
		t.Fatalf("Values failed: %v", err)
	}
	got := make([]float64, n)
	for i, v := range w {
		if imag(v) != 0 {
			t.Errorf("eigenvalue %d has nonzero imaginary part: %v", i, v)
		}
		got[i] = real(v)
	}
	sort.Float64s(got)
	sort.Float64s(ref)
	for i := range got {
		if !floats.EqualWithinAbsOrRel(got[i], ref[i], 1e-12, 1e-10) {
			t.Errorf("eigenvalue %d: got %v, want %v", i, got[i], ref[i])
		}
	}
}

func TestDecomposeScaleInvariance(t *testing.T) {
	// Decomposing a matrix with extreme norm must succeed and satisfy
	// the factorization residual after unscaling.
	rnd := rand.New(rand.NewPCG(7, 7))
	for _, scale := range []float64{0x1p-600, 0x1p600} {
		t.Run(fmt.Sprintf("scale=%g", scale), func(t *testing.T) {
			const n = 8
			a := randomDense(n, rnd)
			a.Scale(scale, a)
			tm, z, w, err := Decompose(a)
			if err != nil {
				t.Fatalf("Decompose failed: %v", err)
			}
			checkRealSchur(t, a, tm, z, w)
		})
	}
}

func TestDecomposeIdempotent(t *testing.T) {
	// A quasi-triangular input must itself decompose cleanly.
	rnd := rand.New(rand.NewPCG(8, 8))
	const n = 10
	a := randomDense(n, rnd)
	tm, _, _, err := Decompose(a)
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	tm2, z2, w2, err := Decompose(tm)
	if err != nil {
		t.Fatalf("second Decompose failed: %v", err)
	}
	checkRealSchur(t, tm, tm2, z2, w2)
}

func TestDecomposeRayleigh(t *testing.T) {
	// Rayleigh shifts on a symmetric matrix.
	rnd := rand.New(rand.NewPCG(9, 9))
	const n = 12
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := rnd.NormFloat64()
			a.Set(i, j, v)
			a.Set(j, i, v)
		}
	}
	tm, z, w, err := Decompose(a, ShiftPolicy(Rayleigh))
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	checkRealSchur(t, a, tm, z, w)
	for i, v := range w {
		if imag(v) != 0 {
			t.Errorf("symmetric matrix produced complex eigenvalue %d: %v", i, v)
		}
	}
}

func TestValues(t *testing.T) {
	rnd := rand.New(rand.NewPCG(10, 10))
	const n = 9
	a := randomDense(n, rnd)
	_, _, w, err := Decompose(a)
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	wv, err := Values(a)
	if err != nil {
		t.Fatalf("Values failed: %v", err)
	}
	wantSpectrum(t, wv, w, 1e-10)
}

func TestDecomposeErrors(t *testing.T) {
	a := mat.NewDense(3, 3, nil)
	rect := mat.NewDense(2, 3, nil)

	if _, _, _, err := Decompose(rect); !errors.Is(err, ErrNonSquare) {
		t.Errorf("non-square input: got %v, want ErrNonSquare", err)
	}
	if _, err := Values(rect); !errors.Is(err, ErrNonSquare) {
		t.Errorf("non-square input to Values: got %v, want ErrNonSquare", err)
	}
	if _, _, _, err := Decompose(a, Permute(true)); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Permute(true): got %v, want ErrInvalidOption", err)
	}
	if _, _, _, err := Decompose(a, ShiftPolicy(Shift(42))); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("unknown shift policy: got %v, want ErrInvalidOption", err)
	}
	if _, _, _, err := Decompose(a, MaxIterations(-1)); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("negative iteration cap: got %v, want ErrInvalidOption", err)
	}

	rnd := rand.New(rand.NewPCG(11, 11))
	big := randomDense(20, rnd)
	if _, _, _, err := Decompose(big, MaxIterations(1)); !errors.Is(err, ErrIterationLimit) {
		t.Errorf("starved iteration: got %v, want ErrIterationLimit", err)
	}
	if _, _, _, err := Decompose(big, MaxIterations(0)); !errors.Is(err, ErrIterationLimit) {
		t.Errorf("zero iteration cap: got %v, want ErrIterationLimit", err)
	}
	if _, _, _, err := Decompose(upperTriangular(7), MaxIterations(0)); err != nil {
		t.Errorf("zero iteration cap on triangular input: %v", err)
	}
}

func TestWantVectorsFalse(t *testing.T) {
	rnd := rand.New(rand.NewPCG(12, 12))
	a := randomDense(6, rnd)
	_, z, _, err := Decompose(a, WantVectors(false))
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	if z != nil {
		t.Error("z is non-nil with WantVectors(false)")
	}
}

// checkRealSchur verifies the defining properties of the real Schur
// decomposition: T quasi-triangular with standardized 2×2 blocks, Z
// orthogonal, A = Z*T*Zᵀ, and w matching the diagonal blocks with
// conjugate pairs adjacent.
func checkRealSchur(t *testing.T, a, tm, z *mat.Dense, w []complex128) {
	t.Helper()
	n, _ := a.Dims()
	if n == 0 {
		return
	}

	// Quasi-triangular structure.
	for i := 2; i < n; i++ {
		for j := 0; j < i-1; j++ {
			if tm.At(i, j) != 0 {
				t.Errorf("T[%d,%d] = %v, want 0", i, j, tm.At(i, j))
			}
		}
	}
	for i := 1; i < n-1; i++ {
		if tm.At(i, i-1) != 0 && tm.At(i+1, i) != 0 {
			t.Errorf("adjacent nonzero subdiagonals at %d", i)
		}
	}

	// Conjugate pairs adjacent, positive imaginary part first.
	for i := 0; i < n; {
		if imag(w[i]) == 0 {
			i++
			continue
		}
		if imag(w[i]) < 0 {
			t.Errorf("eigenvalue %d: negative imaginary part leads a pair", i)
		}
		if i+1 >= n || w[i+1] != complex(real(w[i]), -imag(w[i])) {
			t.Errorf("eigenvalue %d: conjugate partner missing", i)
		}
		i += 2
	}

	anorm := math.Max(mat.Norm(a, 1), 1)
	tol := 100 * float64(n) * 2 * machEps

	// Orthogonality of Z.
	var zzt mat.Dense
	zzt.Mul(z, z.T())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if d := math.Abs(zzt.At(i, j) - want); d > tol {
				t.Errorf("|I - ZZᵀ|[%d,%d] = %v", i, j, d)
				return
			}
		}
	}

	// Factorization residual.
	var ztzt mat.Dense
	ztzt.Mul(z, tm)
	ztzt.Mul(&ztzt, z.T())
	var diff mat.Dense
	diff.Sub(a, &ztzt)
	if resid := mat.Norm(&diff, 1) / anorm; resid > tol {
		t.Errorf("|A - ZTZᵀ|/|A| = %v, want <= %v", resid, tol)
	}
}

// wantSpectrum checks that got and want agree as multisets.
func wantSpectrum(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("spectrum length %d, want %d", len(got), len(want))
	}
	g := append([]complex128{}, got...)
	w := append([]complex128{}, want...)
	less := func(s []complex128) func(i, j int) bool {
		return func(i, j int) bool {
			if real(s[i]) != real(s[j]) {
				return real(s[i]) < real(s[j])
			}
			return imag(s[i]) < imag(s[j])
		}
	}
	sort.Slice(g, less(g))
	sort.Slice(w, less(w))
	for i := range g {
		if d := math.Hypot(real(g[i])-real(w[i]), imag(g[i])-imag(w[i])); d > tol {
			t.Errorf("eigenvalue %d: got %v, want %v", i, g[i], w[i])
		}
	}
}

func identity(n int) *mat.Dense {
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1)
	}
	return a
}

func upperTriangular(n int) *mat.Dense {
	rnd := rand.New(rand.NewPCG(13, 13))
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			a.Set(i, j, rnd.NormFloat64())
		}
	}
	return a
}
