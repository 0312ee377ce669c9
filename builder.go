/*
 * builder.go, part of synthpdb.
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
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/rmera/synthpdb/v3"
)

//GenerationConfig collects one generation request. Exactly one of
//Length>0 or a non-empty Sequence determines the output length; a
//present Sequence always wins and Length is then ignored.
type GenerationConfig struct {
	Length               int
	Sequence             string
	FullAtom             bool
	PlausibleFrequencies bool
	UseRotamers          bool
	Seed                 uint64
}

//The chain identifier for all generated structures.
const ChainID byte = 'A'

//Generated atoms carry fixed occupancy and temperature factors.
const (
	defaultOccupancy = 1.00
	defaultBfactor   = 0.00
)

//Builder places atoms for a resolved sequence. Each Build call produces
//an independent Molecule, so callers may keep and compare several
//attempts. The random source is only consulted for rotamer sampling.
type Builder struct {
	fullAtom bool
	rotamers bool
	src      rand.Source
}

//NewBuilder returns a Builder. src may be nil if rotamers is false.
func NewBuilder(fullAtom, rotamers bool, src rand.Source) *Builder {
	return &Builder{fullAtom: fullAtom, rotamers: rotamers, src: src}
}

//GenerateMolecule resolves the request in conf and builds the
//structure. It fails with an invalid-input error when conf carries
//neither a sequence nor a positive length, or when the sequence string
//doesn't parse. The same conf always yields the same structure; vary
//Seed for different draws.
func GenerateMolecule(conf GenerationConfig) (*Molecule, error) {
	if conf.Sequence == "" && conf.Length <= 0 {
		return nil, NewInputError("Length must be a positive integer when no sequence is provided")
	}
	src := rand.NewSource(conf.Seed)
	seq, err := ResolveSequence(conf.Length, conf.Sequence, conf.PlausibleFrequencies, src)
	if err != nil {
		return nil, errDecorate(err, "GenerateMolecule")
	}
	b := NewBuilder(conf.FullAtom, conf.UseRotamers, src)
	mol, err := b.Build(seq)
	if err != nil {
		return nil, errDecorate(err, "GenerateMolecule")
	}
	return mol, nil
}

//Generate is GenerateMolecule returning PDB-format text. It is the
//one-call entry point for callers that only want the file contents.
func Generate(conf GenerationConfig) (string, error) {
	mol, err := GenerateMolecule(conf)
	if err != nil {
		return "", err
	}
	return PDBString(mol), nil
}

//Build places every atom for the given sequence of 3-letter residue
//names and returns the assembled Molecule. An empty sequence yields an
//empty Molecule (nil coordinates), not an error. Build never fails on
//chemically extreme but structurally legal geometry; judging validity
//is the validator's job.
func (B *Builder) Build(seq []string) (*Molecule, error) {
	for _, res := range seq {
		if !IsStandardResidue(res) {
			return nil, NewInputError(fmt.Sprintf("Invalid 3-letter amino acid code: %s", res))
		}
	}
	if len(seq) == 0 {
		return &Molecule{Atoms: []*Atom{}}, nil
	}
	if B.fullAtom {
		return B.buildFullAtom(seq)
	}
	return B.buildCAOnly(seq)
}

//buildCAOnly places one CA atom per residue along the x axis, at the
//reference CA-CA spacing.
func (B *Builder) buildCAOnly(seq []string) (*Molecule, error) {
	atoms := make([]*Atom, 0, len(seq))
	data := make([]float64, 0, 3*len(seq))
	for i, res := range seq {
		atoms = append(atoms, newAtom("CA", "C", res, i+1, i+1))
		data = append(data, float64(i)*CADistance, 0, 0)
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		return nil, errDecorate(err, "buildCAOnly")
	}
	return NewMolecule(atoms, coords)
}

//buildFullAtom grows the backbone residue by residue with the
//internal-coordinate placement in PlaceAtom, then hangs each side chain
//from its backbone following the residue's template.
func (B *Builder) buildFullAtom(seq []string) (*Molecule, error) {
	atoms := make([]*Atom, 0, len(seq)*8)
	data := make([]float64, 0, 3*len(seq)*8)
	serial := 1
	//backbone atoms of the previous residue, needed to seed the next one
	var prevN, prevCA, prevC *v3.Matrix

	addAtom := func(name, symbol, res string, molid int, pos *v3.Matrix) {
		atoms = append(atoms, newAtom(name, symbol, res, serial, molid))
		data = append(data, pos.At(0, 0), pos.At(0, 1), pos.At(0, 2))
		serial++
	}

	for i, res := range seq {
		placed := make(map[string]*v3.Matrix, 16)
		var n, ca, c *v3.Matrix
		if i == 0 {
			n, ca, c = seedResidue()
		} else {
			n = PlaceAtom(prevN, prevCA, prevC, BondCN, Deg2Rad(AngleCACN), Deg2Rad(DefaultPsi))
			ca = PlaceAtom(prevCA, prevC, n, BondNCA, Deg2Rad(AngleCNCA), Deg2Rad(DefaultOmega))
			c = PlaceAtom(prevC, n, ca, BondCAC, Deg2Rad(AngleNCAC), Deg2Rad(DefaultPhi))
		}
		//carbonyl O: trans to the next N, i.e. psi+180
		o := PlaceAtom(n, ca, c, BondCO, Deg2Rad(AngleCACO), Deg2Rad(DefaultPsi+180))
		placed["N"], placed["CA"], placed["C"], placed["O"] = n, ca, c, o
		addAtom("N", "N", res, i+1, n)
		addAtom("CA", "C", res, i+1, ca)
		addAtom("C", "C", res, i+1, c)
		addAtom("O", "O", res, i+1, o)

		var chis []float64
		if B.rotamers {
			if rot := SampleRotamer(res, B.src); rot != nil {
				chis = rot.Chis
			}
		}
		for _, spec := range SideChains[res] {
			dih := spec.Dihedral
			if spec.Chi > 0 && chis != nil && spec.Chi <= len(chis) {
				dih = chis[spec.Chi-1] + spec.Offset
			}
			a := placed[spec.Parents[0]]
			b := placed[spec.Parents[1]]
			cc := placed[spec.Parents[2]]
			if a == nil || b == nil || cc == nil {
				return nil, CError{msg: fmt.Sprintf("Template for %s names an unplaced parent for atom %s", res, spec.Name)}
			}
			pos := PlaceAtom(a, b, cc, spec.Length, Deg2Rad(spec.Angle), Deg2Rad(dih))
			placed[spec.Name] = pos
			addAtom(spec.Name, spec.Symbol, res, i+1, pos)
		}
		prevN, prevCA, prevC = n, ca, c
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		return nil, errDecorate(err, "buildFullAtom")
	}
	return NewMolecule(atoms, coords)
}

//seedResidue returns the N, CA and C positions of the first residue:
//N at the origin, CA along +x, and C in the xy plane at the ideal
//N-CA-C angle.
func seedResidue() (*v3.Matrix, *v3.Matrix, *v3.Matrix) {
	n := v3.Zeros(1)
	ca := v3.Zeros(1)
	ca.Set(0, 0, BondNCA)
	c := v3.Zeros(1)
	ang := Deg2Rad(AngleNCAC)
	c.Set(0, 0, BondNCA-BondCAC*math.Cos(ang))
	c.Set(0, 1, BondCAC*math.Sin(ang))
	return n, ca, c
}

func newAtom(name, symbol, res string, serial, molid int) *Atom {
	return &Atom{
		Name:      name,
		Id:        serial,
		Molname:   res,
		Molname1:  OneLetterCode(res),
		Molid:     molid,
		Chain:     ChainID,
		Occupancy: defaultOccupancy,
		Bfactor:   defaultBfactor,
		Symbol:    symbol,
	}
}
