/*
 * check_test.go, part of synthpdb.
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

package check

import (
	"math"
	"testing"

	synth "github.com/rmera/synthpdb"
	"github.com/rmera/synthpdb/v3"
)

//backbone builds a 3-residue backbone (N, CA, C only) with the given
//middle-residue phi/psi and the omega of the first peptide bond, all
//other internal coordinates ideal.
func backbone(Te *testing.T, names [3]string, phi2, psi2, omega12 float64) *synth.Molecule {
	n1 := v3.Zeros(1)
	ca1 := v3.Zeros(1)
	ca1.Set(0, 0, synth.BondNCA)
	c1 := v3.Zeros(1)
	ang := synth.Deg2Rad(synth.AngleNCAC)
	c1.Set(0, 0, synth.BondNCA-synth.BondCAC*math.Cos(ang))
	c1.Set(0, 1, synth.BondCAC*math.Sin(ang))

	n2 := synth.PlaceAtom(n1, ca1, c1, synth.BondCN, synth.Deg2Rad(synth.AngleCACN), synth.Deg2Rad(synth.DefaultPsi))
	ca2 := synth.PlaceAtom(ca1, c1, n2, synth.BondNCA, synth.Deg2Rad(synth.AngleCNCA), synth.Deg2Rad(omega12))
	c2 := synth.PlaceAtom(c1, n2, ca2, synth.BondCAC, synth.Deg2Rad(synth.AngleNCAC), synth.Deg2Rad(phi2))
	n3 := synth.PlaceAtom(n2, ca2, c2, synth.BondCN, synth.Deg2Rad(synth.AngleCACN), synth.Deg2Rad(psi2))
	ca3 := synth.PlaceAtom(ca2, c2, n3, synth.BondNCA, synth.Deg2Rad(synth.AngleCNCA), synth.Deg2Rad(180))
	c3 := synth.PlaceAtom(c2, n3, ca3, synth.BondCAC, synth.Deg2Rad(synth.AngleNCAC), synth.Deg2Rad(synth.DefaultPhi))

	points := []*v3.Matrix{n1, ca1, c1, n2, ca2, c2, n3, ca3, c3}
	atomNames := []string{"N", "CA", "C"}
	symbols := []string{"N", "C", "C"}
	atoms := make([]*synth.Atom, 0, 9)
	data := make([]float64, 0, 27)
	for i, p := range points {
		res := i / 3
		atoms = append(atoms, &synth.Atom{
			Name:    atomNames[i%3],
			Id:      i + 1,
			Molname: names[res],
			Molid:   res + 1,
			Chain:   'A',
			Symbol:  symbols[i%3],
		})
		data = append(data, p.At(0, 0), p.At(0, 1), p.At(0, 2))
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := synth.NewMolecule(atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	return mol
}

func TestValidateCleanStructure(Te *testing.T) {
	b := testBuilder(true)
	mol, err := b.Build([]string{"MET", "ALA", "LEU", "GLU", "LYS"})
	if err != nil {
		Te.Fatal(err)
	}
	rep := Validate(mol)
	if !rep.Valid() {
		Te.Fatalf("freshly built structure should validate:\n%s", rep)
	}
	//validation is read-only and repeatable
	rep2 := Validate(mol)
	if len(rep2.Violations) != len(rep.Violations) {
		Te.Error("validation is not idempotent")
	}
}

//testBuilder wraps the builder constructor so the tests read well.
func testBuilder(fullAtom bool) *synth.Builder {
	return synth.NewBuilder(fullAtom, false, nil)
}

func TestValidateEmpty(Te *testing.T) {
	if !Validate(nil).Valid() {
		Te.Error("a nil molecule has nothing to flag")
	}
	if !Validate(&synth.Molecule{Atoms: []*synth.Atom{}}).Valid() {
		Te.Error("an empty molecule has nothing to flag")
	}
}

func TestBondLengthCheck(Te *testing.T) {
	b := testBuilder(false)
	mol, err := b.Build([]string{"ALA", "CYS", "ASP", "GLU"})
	if err != nil {
		Te.Fatal(err)
	}
	if n := Validate(mol).Count(BondLength); n != 0 {
		Te.Fatalf("ideal CA trace has %d bond violations", n)
	}
	//stretch the last CA out of tolerance
	mol.Coords.Set(3, 0, mol.Coords.At(3, 0)+0.5)
	rep := Validate(mol)
	if n := rep.Count(BondLength); n != 1 {
		Te.Errorf("wanted 1 bond violation, got %d:\n%s", n, rep)
	}
}

func TestRamachandranCheck(Te *testing.T) {
	good := backbone(Te, [3]string{"ALA", "ALA", "ALA"}, synth.DefaultPhi, synth.DefaultPsi, 180)
	rep := Validate(good)
	if n := rep.Count(Ramachandran); n != 0 {
		Te.Errorf("extended backbone flagged: %d rama violations:\n%s", n, rep)
	}
	bad := backbone(Te, [3]string{"ALA", "ALA", "ALA"}, 60, 60, 180)
	if n := Validate(bad).Count(Ramachandran); n != 1 {
		Te.Errorf("phi/psi (60, 60) should give 1 rama violation, got %d", n)
	}
	//glycine is exempt
	gly := backbone(Te, [3]string{"ALA", "GLY", "ALA"}, 60, 60, 180)
	if n := Validate(gly).Count(Ramachandran); n != 0 {
		Te.Errorf("glycine should be exempt, got %d violations", n)
	}
	//proline only constrains phi
	proOK := backbone(Te, [3]string{"ALA", "PRO", "ALA"}, -65, 150, 180)
	if n := Validate(proOK).Count(Ramachandran); n != 0 {
		Te.Errorf("PRO phi -65 should pass, got %d violations", n)
	}
	proBad := backbone(Te, [3]string{"ALA", "PRO", "ALA"}, -150, 150, 180)
	if n := Validate(proBad).Count(Ramachandran); n != 1 {
		Te.Errorf("PRO phi -150 should fail, got %d violations", n)
	}
}

func TestPeptidePlaneCheck(Te *testing.T) {
	planar := backbone(Te, [3]string{"ALA", "ALA", "ALA"}, synth.DefaultPhi, synth.DefaultPsi, 180)
	if n := Validate(planar).Count(PeptidePlane); n != 0 {
		Te.Errorf("planar omega flagged %d times", n)
	}
	twisted := backbone(Te, [3]string{"ALA", "ALA", "ALA"}, synth.DefaultPhi, synth.DefaultPsi, 140)
	if n := Validate(twisted).Count(PeptidePlane); n != 1 {
		Te.Errorf("omega 140 should give 1 violation, got %d", n)
	}
	//just inside tolerance
	tolerated := backbone(Te, [3]string{"ALA", "ALA", "ALA"}, synth.DefaultPhi, synth.DefaultPsi, 165)
	if n := Validate(tolerated).Count(PeptidePlane); n != 0 {
		Te.Errorf("omega 165 is within tolerance, got %d violations", n)
	}
}

func TestClashCheck(Te *testing.T) {
	b := testBuilder(false)
	mol, err := b.Build([]string{"ALA", "CYS", "ASP", "GLU", "PHE", "HIS"})
	if err != nil {
		Te.Fatal(err)
	}
	if n := Validate(mol).Count(StericClash); n != 0 {
		Te.Fatalf("trace should be clash free, got %d", n)
	}
	//park residue 5's CA on top of residue 1's
	mol.Coords.Set(4, 0, 0.5)
	mol.Coords.Set(4, 1, 0.5)
	mol.Coords.Set(4, 2, 0)
	if n := Validate(mol).Count(StericClash); n != 1 {
		Te.Errorf("wanted 1 clash, got %d", n)
	}
}

func TestSequenceCheck(Te *testing.T) {
	b := testBuilder(false)
	run, err := b.Build([]string{"ALA", "ALA", "ALA", "ALA", "ALA", "ALA"})
	if err != nil {
		Te.Fatal(err)
	}
	rep := Validate(run)
	if n := rep.Count(SequenceImprobability); n != 1 {
		Te.Fatalf("a run of 6 should be flagged once, got %d:\n%s", n, rep)
	}
	//sequence checks always come last
	if rep.Violations[len(rep.Violations)-1].Kind != SequenceImprobability {
		Te.Error("sequence violation is not last in the report")
	}
	//a long single-residue chain also fails the composition test
	seq := make([]string, 60)
	for i := range seq {
		seq[i] = "GLY"
	}
	long, err := b.Build(seq)
	if err != nil {
		Te.Fatal(err)
	}
	if n := Validate(long).Count(SequenceImprobability); n != 2 {
		Te.Errorf("poly-GLY x60 should fail run and composition, got %d violations", n)
	}
	//plausible lengths and mixtures pass
	varied, err := b.Build([]string{"ALA", "CYS", "ASP", "GLU", "PHE"})
	if err != nil {
		Te.Fatal(err)
	}
	if n := Validate(varied).Count(SequenceImprobability); n != 0 {
		Te.Errorf("short varied sequence flagged %d times", n)
	}
}

func TestRamaAngles(Te *testing.T) {
	b := testBuilder(true)
	mol, err := b.Build([]string{"ALA", "ALA", "ALA", "ALA", "ALA"})
	if err != nil {
		Te.Fatal(err)
	}
	phis, psis := RamaAngles(mol)
	if len(phis) != 3 || len(psis) != 3 {
		Te.Fatalf("5 residues have 3 interior phi/psi pairs, got %d/%d", len(phis), len(psis))
	}
	for i := range phis {
		if math.Abs(phis[i]-synth.DefaultPhi) > 1e-6 {
			Te.Errorf("phi %d is %.2f, wanted %.2f", i, phis[i], synth.DefaultPhi)
		}
		if math.Abs(psis[i]-synth.DefaultPsi) > 1e-6 {
			Te.Errorf("psi %d is %.2f, wanted %.2f", i, psis[i], synth.DefaultPsi)
		}
	}
}
