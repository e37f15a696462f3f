// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Specplot reads a square real matrix from a CSV file, computes its
// eigenvalues, and renders them as a scatter plot in the complex
// plane.
//
// Usage:
//
//	specplot --in matrix.csv --out spectrum.png
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jamestjsp/schur"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		inPath   string
		outPath  string
		rayleigh bool
	)
	cmd := &cobra.Command{
		Use:           "specplot",
		Short:         "Plot the eigenvalue spectrum of a matrix",
		Long:          "Specplot reads a square matrix from a CSV file, computes its eigenvalues through the real Schur decomposition, and writes a scatter plot of the spectrum in the complex plane.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readMatrix(inPath)
			if err != nil {
				return err
			}
			opts := []schur.Option{}
			if rayleigh {
				opts = append(opts, schur.ShiftPolicy(schur.Rayleigh))
			}
			w, err := schur.Values(a, opts...)
			if err != nil {
				return err
			}
			return writePlot(w, outPath)
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "CSV file holding the square input matrix")
	cmd.Flags().StringVar(&outPath, "out", "spectrum.png", "output PNG file")
	cmd.Flags().BoolVar(&rayleigh, "rayleigh", false, "use Rayleigh quotient shifts")
	cmd.MarkFlagRequired("in")
	return cmd
}

func readMatrix(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%s: empty matrix", path)
	}
	a := mat.NewDense(n, n, nil)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d", path, i+1, len(row), n)
		}
		for j, field := range row {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d, column %d: %w", path, i+1, j+1, err)
			}
			a.Set(i, j, v)
		}
	}
	return a, nil
}

func writePlot(w []complex128, path string) error {
	pts := make(plotter.XYs, len(w))
	for i, v := range w {
		pts[i].X = real(v)
		pts[i].Y = imag(v)
	}
	p := plot.New()
	p.Title.Text = "Eigenvalue spectrum"
	p.X.Label.Text = "Re"
	p.Y.Label.Text = "Im"
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Radius = vg.Points(3)
	p.Add(s, plotter.NewGrid())
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
