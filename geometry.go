/*
 * geometry.go, part of synthpdb.
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

//geometry.go holds the ideal internal-coordinate reference data used to
//build structures: backbone bond lengths and angles, default backbone
//dihedrals, and the per-residue side-chain templates. All of it is
//read-only, package-level data loaded once.

package synth

//Backbone ideal geometry, lengths in A, angles in degrees.
const (
	//Reference Calpha-Calpha spacing for the CA-only linear chain.
	CADistance = 3.8

	BondNCA = 1.458 //N-CA
	BondCAC = 1.525 //CA-C
	BondCN  = 1.329 //C-N, the peptide bond
	BondCO  = 1.231 //C=O

	AngleNCAC = 111.2 //N-CA-C
	AngleCACN = 116.2 //CA-C-N(+1)
	AngleCNCA = 121.7 //C(-1)-N-CA
	AngleCACO = 120.8 //CA-C=O
)

//Default backbone dihedrals, in degrees. The builder places every
//residue in an extended (beta-like) conformation, which keeps side
//chains away from each other and lands inside the allowed Ramachandran
//region.
const (
	DefaultPhi   = -120.0
	DefaultPsi   = 130.0
	DefaultOmega = 180.0
)

//AtomSpec describes how to place one side-chain atom from three already
//placed atoms of the same residue: the atom is bonded to Parents[2] at
//distance Length, forms the angle Parents[1]-Parents[2]-atom of Angle
//degrees, and the dihedral Parents[0]-Parents[1]-Parents[2]-atom takes
//Dihedral degrees.
//
//When Chi is non-zero the dihedral is the residue's Chi-th chi angle:
//a sampled rotamer replaces Dihedral with chi[Chi-1]+Offset (Offset is
//non-zero for branch atoms like VAL CG2, which ride on the same chi as
//their sibling). Without rotamers the Dihedral column is used as-is,
//which gives the deliberately degenerate all-trans baseline.
type AtomSpec struct {
	Name     string
	Symbol   string
	Parents  [3]string
	Length   float64
	Angle    float64
	Dihedral float64
	Chi      int
	Offset   float64
}

//SideChains maps each standard residue to the ordered list of its
//side-chain atom placements. The order guarantees every parent is
//placed before its children. Glycine has no side chain. Ring closures
//(HIS, PHE, TYR, TRP, PRO) are built as trees; the closing bond is not
//an explicit placement.
var SideChains = map[string][]AtomSpec{
	"GLY": {},
	"ALA": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.521, 110.5, -122.0, 0, 0},
	},
	"VAL": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.540, 111.5, -122.0, 0, 0},
		{"CG1", "C", [3]string{"N", "CA", "CB"}, 1.527, 110.5, 180.0, 1, 0},
		{"CG2", "C", [3]string{"N", "CA", "CB"}, 1.527, 110.5, 58.0, 1, -122.0},
	},
	"LEU": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.530, 110.5, -122.0, 0, 0},
		{"CG", "C", [3]string{"N", "CA", "CB"}, 1.530, 116.3, 180.0, 1, 0},
		{"CD1", "C", [3]string{"CA", "CB", "CG"}, 1.521, 110.7, 180.0, 2, 0},
		{"CD2", "C", [3]string{"CA", "CB", "CG"}, 1.521, 110.7, -58.0, 2, 122.0},
	},
	"ILE": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.540, 111.5, -122.0, 0, 0},
		{"CG1", "C", [3]string{"N", "CA", "CB"}, 1.530, 110.4, 180.0, 1, 0},
		{"CG2", "C", [3]string{"N", "CA", "CB"}, 1.521, 110.5, 58.0, 1, -122.0},
		{"CD1", "C", [3]string{"CA", "CB", "CG1"}, 1.513, 113.9, 180.0, 2, 0},
	},
	"PRO": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.530, 103.0, -120.0, 0, 0},
		{"CG", "C", [3]string{"N", "CA", "CB"}, 1.492, 104.5, 180.0, 1, 0},
		{"CD", "C", [3]string{"CA", "CB", "CG"}, 1.503, 106.1, 180.0, 2, 0},
	},
	"PHE": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.530, 110.5, -122.0, 0, 0},
		{"CG", "C", [3]string{"N", "CA", "CB"}, 1.502, 113.8, 180.0, 1, 0},
		{"CD1", "C", [3]string{"CA", "CB", "CG"}, 1.384, 120.8, 180.0, 2, 0},
		{"CD2", "C", [3]string{"CA", "CB", "CG"}, 1.384, 120.8, 0.0, 2, 180.0},
		{"CE1", "C", [3]string{"CB", "CG", "CD1"}, 1.382, 120.1, 180.0, 0, 0},
		{"CE2", "C", [3]string{"CB", "CG", "CD2"}, 1.382, 120.1, 180.0, 0, 0},
		{"CZ", "C", [3]string{"CG", "CD1", "CE1"}, 1.372, 120.1, 0.0, 0, 0},
	},
	"TYR": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.530, 110.5, -122.0, 0, 0},
		{"CG", "C", [3]string{"N", "CA", "CB"}, 1.512, 113.9, 180.0, 1, 0},
		{"CD1", "C", [3]string{"CA", "CB", "CG"}, 1.389, 120.8, 180.0, 2, 0},
		{"CD2", "C", [3]string{"CA", "CB", "CG"}, 1.389, 120.8, 0.0, 2, 180.0},
		{"CE1", "C", [3]string{"CB", "CG", "CD1"}, 1.382, 121.1, 180.0, 0, 0},
		{"CE2", "C", [3]string{"CB", "CG", "CD2"}, 1.382, 121.1, 180.0, 0, 0},
		{"CZ", "C", [3]string{"CG", "CD1", "CE1"}, 1.378, 119.6, 0.0, 0, 0},
		{"OH", "O", [3]string{"CD1", "CE1", "CZ"}, 1.376, 119.9, 180.0, 0, 0},
	},
	"TRP": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.530, 110.5, -122.0, 0, 0},
		{"CG", "C", [3]string{"N", "CA", "CB"}, 1.498, 113.6, 180.0, 1, 0},
		{"CD1", "C", [3]string{"CA", "CB", "CG"}, 1.365, 126.9, 180.0, 2, 0},
		{"CD2", "C", [3]string{"CA", "CB", "CG"}, 1.433, 126.7, 0.0, 2, 180.0},
		{"NE1", "N", [3]string{"CB", "CG", "CD1"}, 1.374, 110.2, 180.0, 0, 0},
		{"CE2", "C", [3]string{"CB", "CG", "CD2"}, 1.409, 107.2, 180.0, 0, 0},
		{"CE3", "C", [3]string{"CB", "CG", "CD2"}, 1.398, 133.9, 0.0, 0, 0},
		{"CZ2", "C", [3]string{"CG", "CD2", "CE2"}, 1.394, 122.4, 180.0, 0, 0},
		{"CZ3", "C", [3]string{"CG", "CD2", "CE3"}, 1.382, 118.7, 180.0, 0, 0},
		{"CH2", "C", [3]string{"CD2", "CE2", "CZ2"}, 1.368, 117.5, 0.0, 0, 0},
	},
	"SER": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.530, 110.5, -122.0, 0, 0},
		{"OG", "O", [3]string{"N", "CA", "CB"}, 1.417, 111.1, 180.0, 1, 0},
	},
	"THR": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.540, 111.5, -122.0, 0, 0},
		{"OG1", "O", [3]string{"N", "CA", "CB"}, 1.433, 109.6, 180.0, 1, 0},
		{"CG2", "C", [3]string{"N", "CA", "CB"}, 1.521, 110.5, 58.0, 1, -122.0},
	},
	"CYS": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.530, 110.5, -122.0, 0, 0},
		{"SG", "S", [3]string{"N", "CA", "CB"}, 1.808, 114.4, 180.0, 1, 0},
	},
	"MET": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.530, 110.5, -122.0, 0, 0},
		{"CG", "C", [3]string{"N", "CA", "CB"}, 1.520, 114.1, 180.0, 1, 0},
		{"SD", "S", [3]string{"CA", "CB", "CG"}, 1.807, 112.7, 180.0, 2, 0},
		{"CE", "C", [3]string{"CB", "CG", "SD"}, 1.789, 100.9, 180.0, 3, 0},
	},
	"ASP": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.530, 110.5, -122.0, 0, 0},
		{"CG", "C", [3]string{"N", "CA", "CB"}, 1.516, 112.6, 180.0, 1, 0},
		{"OD1", "O", [3]string{"CA", "CB", "CG"}, 1.249, 118.4, 180.0, 2, 0},
		{"OD2", "O", [3]string{"CA", "CB", "CG"}, 1.249, 118.4, 0.0, 2, 180.0},
	},
	"ASN": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.530, 110.5, -122.0, 0, 0},
		{"CG", "C", [3]string{"N", "CA", "CB"}, 1.516, 112.6, 180.0, 1, 0},
		{"OD1", "O", [3]string{"CA", "CB", "CG"}, 1.231, 120.8, 180.0, 2, 0},
		{"ND2", "N", [3]string{"CA", "CB", "CG"}, 1.328, 116.4, 0.0, 2, 180.0},
	},
	"GLU": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.530, 110.5, -122.0, 0, 0},
		{"CG", "C", [3]string{"N", "CA", "CB"}, 1.520, 114.1, 180.0, 1, 0},
		{"CD", "C", [3]string{"CA", "CB", "CG"}, 1.516, 112.6, 180.0, 2, 0},
		{"OE1", "O", [3]string{"CB", "CG", "CD"}, 1.249, 118.4, 180.0, 3, 0},
		{"OE2", "O", [3]string{"CB", "CG", "CD"}, 1.249, 118.4, 0.0, 3, 180.0},
	},
	"GLN": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.530, 110.5, -122.0, 0, 0},
		{"CG", "C", [3]string{"N", "CA", "CB"}, 1.520, 114.1, 180.0, 1, 0},
		{"CD", "C", [3]string{"CA", "CB", "CG"}, 1.516, 112.6, 180.0, 2, 0},
		{"OE1", "O", [3]string{"CB", "CG", "CD"}, 1.231, 120.8, 180.0, 3, 0},
		{"NE2", "N", [3]string{"CB", "CG", "CD"}, 1.328, 116.4, 0.0, 3, 180.0},
	},
	"LYS": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.530, 110.5, -122.0, 0, 0},
		{"CG", "C", [3]string{"N", "CA", "CB"}, 1.520, 114.1, 180.0, 1, 0},
		{"CD", "C", [3]string{"CA", "CB", "CG"}, 1.520, 111.3, 180.0, 2, 0},
		{"CE", "C", [3]string{"CB", "CG", "CD"}, 1.520, 111.3, 180.0, 3, 0},
		{"NZ", "N", [3]string{"CG", "CD", "CE"}, 1.489, 111.9, 180.0, 4, 0},
	},
	"ARG": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.530, 110.5, -122.0, 0, 0},
		{"CG", "C", [3]string{"N", "CA", "CB"}, 1.520, 114.1, 180.0, 1, 0},
		{"CD", "C", [3]string{"CA", "CB", "CG"}, 1.520, 111.3, 180.0, 2, 0},
		{"NE", "N", [3]string{"CB", "CG", "CD"}, 1.461, 112.0, 180.0, 3, 0},
		{"CZ", "C", [3]string{"CG", "CD", "NE"}, 1.329, 124.2, 180.0, 4, 0},
		{"NH1", "N", [3]string{"CD", "NE", "CZ"}, 1.326, 120.0, 0.0, 0, 0},
		{"NH2", "N", [3]string{"CD", "NE", "CZ"}, 1.326, 120.0, 180.0, 0, 0},
	},
	"HIS": {
		{"CB", "C", [3]string{"C", "N", "CA"}, 1.530, 110.5, -122.0, 0, 0},
		{"CG", "C", [3]string{"N", "CA", "CB"}, 1.497, 113.8, 180.0, 1, 0},
		{"ND1", "N", [3]string{"CA", "CB", "CG"}, 1.378, 122.7, 180.0, 2, 0},
		{"CD2", "C", [3]string{"CA", "CB", "CG"}, 1.354, 131.0, 0.0, 2, 180.0},
		{"CE1", "C", [3]string{"CB", "CG", "ND1"}, 1.321, 109.0, 180.0, 0, 0},
		{"NE2", "N", [3]string{"CG", "ND1", "CE1"}, 1.321, 108.5, 0.0, 0, 0},
	},
}

//ChiCount returns the number of chi angles of a residue type: 0 for
//ALA/GLY, up to 4 for LYS/ARG.
func ChiCount(resname string) int {
	max := 0
	for _, spec := range SideChains[resname] {
		if spec.Chi > max {
			max = spec.Chi
		}
	}
	return max
}
