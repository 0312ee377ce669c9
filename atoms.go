/*
 * atoms.go, part of synthpdb.
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
	"github.com/rmera/synthpdb/v3"
)

//Atom contains the data for one atom read or generated, except for the
//coordinates, which live in a separate matrix (one row per atom).
type Atom struct {
	Name      string //PDB atom name, without padding
	Id        int    //1-based serial, contiguous over the chain
	Molname   string //3-letter residue name
	Molname1  byte   //1-letter residue name
	Molid     int    //1-based residue number
	Chain     byte
	Occupancy float64
	Bfactor   float64
	Symbol    string //element symbol
	Charge    string //formal charge as written in the PDB, usually empty
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic(ErrNilAtoms)
	}
	newat := new(Atom)
	*newat = *A
	return newat
}

//Molecule contains the atoms of one generated or parsed structure plus
//their coordinates. Atom i corresponds to the ith row of Coords.
type Molecule struct {
	Atoms  []*Atom
	Coords *v3.Matrix
}

//NewMolecule builds a Molecule from atoms and coordinates. It returns an
//error if either is nil or if their lengths don't match.
func NewMolecule(atoms []*Atom, coords *v3.Matrix) (*Molecule, error) {
	if atoms == nil {
		return nil, CError{msg: string(ErrNilAtoms)}
	}
	if coords == nil {
		return nil, CError{msg: string(ErrNilCoords)}
	}
	if len(atoms) != coords.NVecs() {
		return nil, CError{msg: string(ErrAtomMismatch)}
	}
	return &Molecule{Atoms: atoms, Coords: coords}, nil
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns the atom with (0-based) index i. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() {
		panic("synthpdb: Requested Atom out of bounds")
	}
	return M.Atoms[i]
}

//Copy returns a deep copy of the molecule, including coordinates.
//Refinement derives new structures from copies, never mutating the
//original, so attempts can be compared.
func (M *Molecule) Copy() *Molecule {
	atoms := make([]*Atom, M.Len())
	for key, val := range M.Atoms {
		atoms[key] = val.Copy()
	}
	coords := v3.Zeros(M.Len())
	coords.Copy(M.Coords)
	return &Molecule{Atoms: atoms, Coords: coords}
}

//NResidues returns the number of residues in the molecule, assuming
//gapless 1-based residue numbering, as the builder produces.
func (M *Molecule) NResidues() int {
	last := 0
	for _, at := range M.Atoms {
		if at.Molid > last {
			last = at.Molid
		}
	}
	return last
}

//Sequence returns the residue names of the molecule, in residue order.
func (M *Molecule) Sequence() []string {
	seq := make([]string, 0, M.NResidues())
	prev := -1
	for _, at := range M.Atoms {
		if at.Molid != prev {
			seq = append(seq, at.Molname)
			prev = at.Molid
		}
	}
	return seq
}

//The 20 standard amino acids, in the order used for sampling.
var StandardAminoAcids = []string{
	"ALA", "ARG", "ASN", "ASP", "CYS",
	"GLN", "GLU", "GLY", "HIS", "ILE",
	"LEU", "LYS", "MET", "PHE", "PRO",
	"SER", "THR", "TRP", "TYR", "VAL",
}

var oneToThree = map[byte]string{
	'A': "ALA", 'R': "ARG", 'N': "ASN", 'D': "ASP", 'C': "CYS",
	'Q': "GLN", 'E': "GLU", 'G': "GLY", 'H': "HIS", 'I': "ILE",
	'L': "LEU", 'K': "LYS", 'M': "MET", 'F': "PHE", 'P': "PRO",
	'S': "SER", 'T': "THR", 'W': "TRP", 'Y': "TYR", 'V': "VAL",
}

var threeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLN": 'Q', "GLU": 'E', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
}

//IsStandardResidue returns whether name is one of the 20 standard
//3-letter residue codes. The name must already be upper-case.
func IsStandardResidue(name string) bool {
	_, ok := threeToOne[name]
	return ok
}

//OneLetterCode returns the 1-letter code for a 3-letter residue name,
//or 0 when the name is not a standard residue.
func OneLetterCode(name string) byte {
	return threeToOne[name]
}

//Natural-abundance frequencies for the standard amino acids, roughly
//the UniProt/Swiss-Prot composition. They don't sum exactly to 1;
//sampling is by relative weight.
var AminoAcidFrequencies = map[string]float64{
	"ALA": 0.0825, "ARG": 0.0553, "ASN": 0.0406, "ASP": 0.0545,
	"CYS": 0.0137, "GLN": 0.0393, "GLU": 0.0675, "GLY": 0.0707,
	"HIS": 0.0227, "ILE": 0.0596, "LEU": 0.0966, "LYS": 0.0584,
	"MET": 0.0242, "PHE": 0.0386, "PRO": 0.0470, "SER": 0.0656,
	"THR": 0.0534, "TRP": 0.0108, "TYR": 0.0292, "VAL": 0.0687,
}

//Van der Waals radii, in A, for the elements that appear in proteins.
//Note that just common "bio-elements" are present.
var vdwRadii = map[string]float64{
	"H": 1.20,
	"C": 1.70,
	"N": 1.55,
	"O": 1.52,
	"S": 1.80,
}

//VdwRadius returns the Van der Waals radius for an element symbol,
//falling back to 1.5 A for anything it doesn't know about.
func VdwRadius(symbol string) float64 {
	if r, ok := vdwRadii[symbol]; ok {
		return r
	}
	return 1.5
}

//Atomic masses in Daltons, same element coverage as the radii.
var symbolMasses = map[string]float64{
	"H": 1.008,
	"C": 12.011,
	"N": 14.007,
	"O": 15.999,
	"S": 32.06,
}

//AtomicMass returns the mass in Daltons for an element symbol, or 0
//for an unknown element.
func AtomicMass(symbol string) float64 {
	return symbolMasses[symbol]
}

//Mass returns the total mass of the molecule's atoms, in Daltons.
//Hydrogens are not generated, so this underestimates the true
//molecular weight accordingly.
func (M *Molecule) Mass() float64 {
	var m float64
	for _, at := range M.Atoms {
		m += AtomicMass(at.Symbol)
	}
	return m
}
