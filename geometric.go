/*
 * geometric.go, part of synthpdb.
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

package synth

import (
	"math"

	"github.com/rmera/synthpdb/v3"
)

//Note: The functions here panic instead of returning errors. They are
//"fundamental" functions: if something goes wrong here the program is
//most likely wrong and should crash.

const appzero float64 = 0.0000001 //used to correct floating point
//errors. Everything with absolute value less than this is considered zero.

//Deg2Rad converts an angle in degrees to radians.
func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

//Rad2Deg converts an angle in radians to degrees.
func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

//Angle takes 2 vectors and calculates the angle in radians between them.
//It does not check for correctness or return errors!
func Angle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm() * v2.Norm()
	dotprod := v1.Dot(v2)
	argument := dotprod / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

//AngleAt returns the angle, in radians, formed at vertex b by the points
//a, b and c.
func AngleAt(a, b, c *v3.Matrix) float64 {
	ba := v3.Zeros(1)
	bc := v3.Zeros(1)
	ba.Sub(a, b)
	bc.Sub(c, b)
	return Angle(ba, bc)
}

//Dihedral calculates the dihedral between the points a, b, c, d, in
//radians, where the first plane is defined by abc and the second by bcd.
func Dihedral(a, b, c, d *v3.Matrix) float64 {
	all := []*v3.Matrix{a, b, c, d}
	for _, point := range all {
		if point == nil {
			panic(ErrNilCoords)
		}
		pr, pc := point.Dims()
		if pr != 1 || pc != 3 {
			panic("synthpdb: Dihedral: Invalid vector shape")
		}
	}
	//bma=b minus a
	bma := v3.Zeros(1)
	cmb := v3.Zeros(1)
	dmc := v3.Zeros(1)
	bmascaled := v3.Zeros(1)
	bma.Sub(b, a)
	cmb.Sub(c, b)
	dmc.Sub(d, c)
	bmascaled.Scale(cmb.Norm(), bma)
	cross1 := v3.Zeros(1)
	cross2 := v3.Zeros(1)
	cross1.Cross(bma, cmb)
	cross2.Cross(cmb, dmc)
	first := bmascaled.Dot(cross2)
	second := cross1.Dot(cross2)
	return math.Atan2(first, second)
}

//PlaceAtom returns the position of a new atom bonded to c, given the
//three previously placed atoms a, b, c, the bond length c-new (A), the
//bond angle b-c-new and the dihedral a-b-c-new (both in radians). This
//is the sequential internal-coordinate construction used to grow a
//chain atom by atom: the new position is expressed in the local frame
//spanned by the b->c direction and the abc plane normal.
func PlaceAtom(a, b, c *v3.Matrix, length, angle, dihedral float64) *v3.Matrix {
	ab := v3.Zeros(1)
	bc := v3.Zeros(1)
	ab.Sub(b, a)
	bc.Sub(c, b)
	ubc := v3.Zeros(1)
	ubc.Unit(bc)
	n := v3.Zeros(1)
	n.Cross(ab, ubc)
	if n.Norm() <= appzero {
		panic("synthpdb: PlaceAtom: Collinear reference atoms")
	}
	un := v3.Zeros(1)
	un.Unit(n)
	m := v3.Zeros(1)
	m.Cross(un, ubc)
	//coordinates of the new atom in the local frame (ubc, m, un)
	dx := -length * math.Cos(angle)
	dy := length * math.Sin(angle) * math.Cos(dihedral)
	dz := length * math.Sin(angle) * math.Sin(dihedral)
	pos := v3.Zeros(1)
	for j := 0; j < 3; j++ {
		pos.Set(0, j, c.At(0, j)+dx*ubc.At(0, j)+dy*m.At(0, j)+dz*un.At(0, j))
	}
	return pos
}
