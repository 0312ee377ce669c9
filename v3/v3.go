/*
 * v3.go, part of synthpdb.
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

//Package v3 implements a container for sets of 3D cartesian coordinates,
//backed by a gonum Dense matrix. Within the package it is understood that
//a "vector" is a row of such a matrix, i.e. the cartesian coordinates of
//one point in 3D space.
package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, i.e. an Nx3 matrix where every
//row holds the x, y, z coordinates of a point.
type Matrix struct {
	*mat.Dense
}

//NewMatrix builds a Matrix with 3 columns from data, which is read in
//row-major order. It returns an error if the length of data is not
//divisible by 3.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	f := make([]float64, 3*vecs)
	return &Matrix{mat.NewDense(vecs, 3, f)}
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//Len returns the number of vectors in the matrix, for compatibility
//with the rest of the library.
func (F *Matrix) Len() int {
	return F.NVecs()
}

//VecView returns a view of the ith vector of the matrix. Changes in the
//view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//VecSlice returns a copy of the ith vector as a 3-element slice.
func (F *Matrix) VecSlice(i int) []float64 {
	return []float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//Copy copies A into the receiver. It panics if the dimensions don't match.
func (F *Matrix) Copy(A *Matrix) {
	fr, _ := F.Dims()
	ar, _ := A.Dims()
	if fr != ar {
		panic(ErrShape)
	}
	F.Dense.Copy(A.Dense)
}

//Add puts in the receiver the sum A+B. Dimension mismatches panic
//in the underlying gonum call.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

//Sub puts in the receiver the difference A-B.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

//Scale puts in the receiver the matrix A scaled by v.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

//AddVec adds the 1x3 row vector vec to each vector of A, putting the
//result in the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	vr, vc := vec.Dims()
	if vr != 1 || vc != 3 {
		panic(ErrShape)
	}
	ar, _ := A.Dims()
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)+vec.At(0, j))
		}
	}
}

//SubVec subtracts the 1x3 row vector vec from each vector of A, putting
//the result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	vr, vc := vec.Dims()
	if vr != 1 || vc != 3 {
		panic(ErrShape)
	}
	ar, _ := A.Dims()
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)-vec.At(0, j))
		}
	}
}

//Cross puts in the receiver, which must be a 1x3 matrix, the cross
//product of the vectors a and b.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() != 1 || b.NVecs() != 1 || F.NVecs() != 1 {
		panic(ErrNoCrossProduct)
	}
	F.Set(0, 0, a.At(0, 1)*b.At(0, 2)-a.At(0, 2)*b.At(0, 1))
	F.Set(0, 1, a.At(0, 2)*b.At(0, 0)-a.At(0, 0)*b.At(0, 2))
	F.Set(0, 2, a.At(0, 0)*b.At(0, 1)-a.At(0, 1)*b.At(0, 0))
}

//Dot returns the dot product of the receiver and B, both of which must
//be 1x3 matrices.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() != 1 || B.NVecs() != 1 {
		panic(ErrShape)
	}
	return F.At(0, 0)*B.At(0, 0) + F.At(0, 1)*B.At(0, 1) + F.At(0, 2)*B.At(0, 2)
}

//Norm returns the 2-norm of the receiver, which must be a 1x3 matrix.
func (F *Matrix) Norm() float64 {
	if F.NVecs() != 1 {
		panic(ErrShape)
	}
	x := F.At(0, 0)
	y := F.At(0, 1)
	z := F.At(0, 2)
	return math.Sqrt(x*x + y*y + z*z)
}

//Unit puts in the receiver the vector A scaled to norm 1. It panics if
//the norm of A is zero.
func (F *Matrix) Unit(A *Matrix) {
	n := A.Norm()
	if n == 0 {
		panic(ErrZeroNorm)
	}
	F.Scale(1/n, A)
}

//SomeVecs puts in the receiver a copy of the vectors of A with the
//indexes given in clist. The receiver must have len(clist) vectors.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) || A.NVecs() < len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		for j := 0; j < 3; j++ {
			F.Set(key, j, A.At(val, j))
		}
	}
}

//SetVecs replaces the vectors of the receiver with the indexes given in
//clist by the vectors of A, in order.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	if A.NVecs() < len(clist) || F.NVecs() < len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		for j := 0; j < 3; j++ {
			F.Set(val, j, A.At(key, j))
		}
	}
}
