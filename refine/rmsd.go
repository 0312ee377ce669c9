/*
 * rmsd.go, part of synthpdb.
 *
 * Copyright 2026 The synthpdb authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package refine

import (
	"math"

	matrix "github.com/skelterjohn/go.matrix"

	synth "github.com/rmera/synthpdb"
	v3 "github.com/rmera/synthpdb/v3"
)

//CARMSD superimposes the CA traces of two structures with the Kabsch
//algorithm and returns the root-mean-square deviation in A. The two
//structures must have the same number of CA atoms.
func CARMSD(m1, m2 *synth.Molecule) (float64, error) {
	x := caCoords(m1)
	y := caCoords(m2)
	if len(x) != len(y) {
		return 0, synth.NewError("structures have different numbers of CA atoms")
	}
	n := len(x) / 3
	if n == 0 {
		return 0, synth.NewError("no CA atoms to superimpose")
	}
	center(x)
	center(y)
	X := matrix.MakeDenseMatrix(x, n, 3)
	Y := matrix.MakeDenseMatrix(y, n, 3)

	//covariance C = X^T Y, then SVD C = U S V^T and the optimal
	//rotation R = V diag(1,1,d) U^T with d correcting improper
	//rotations (negative det means a reflection snuck in).
	C, err := X.Transpose().TimesDense(Y)
	if err != nil {
		return 0, err
	}
	U, _, V, err := C.SVD()
	if err != nil {
		return 0, err
	}
	d := 1.0
	if C.Det() < 0 {
		d = -1.0
	}
	D := matrix.MakeDenseMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0, d}, 3, 3)
	R, err := must(V.TimesDense(D)).TimesDense(U.Transpose())
	if err != nil {
		return 0, err
	}
	Xrot, err := X.TimesDense(R)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			diff := Xrot.Get(i, j) - Y.Get(i, j)
			sum += diff * diff
		}
	}
	return math.Sqrt(sum / float64(n)), nil
}

//caCoords returns the flattened CA coordinates of a molecule.
func caCoords(mol *synth.Molecule) []float64 {
	out := make([]float64, 0, mol.Len())
	for i, at := range mol.Atoms {
		if at.Name == "CA" {
			out = append(out, mol.Coords.VecSlice(i)...)
		}
	}
	return out
}

//center subtracts the centroid from flattened Nx3 coordinates, in
//place. The v3 matrix built here shares the backing slice, so the
//subtraction writes through to coords.
func center(coords []float64) {
	m, err := v3.NewMatrix(coords)
	if err != nil {
		panic(err.Error())
	}
	cen := v3.Zeros(1)
	for i := 0; i < m.NVecs(); i++ {
		cen.Add(cen, m.VecView(i))
	}
	cen.Scale(1/float64(m.NVecs()), cen)
	m.SubVec(m, cen)
}

func must(A *matrix.DenseMatrix, err error) *matrix.DenseMatrix {
	if err != nil {
		panic(err)
	}
	return A
}
