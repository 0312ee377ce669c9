/*
 * refine_test.go, part of synthpdb.
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
	"testing"

	synth "github.com/rmera/synthpdb"
	"github.com/rmera/synthpdb/check"
	"github.com/rmera/synthpdb/v3"
)

//traceNames is a run-free sequence for hand-built CA traces.
var traceNames = []string{"ALA", "CYS", "ASP", "GLU", "PHE", "HIS", "ILE"}

//caTrace builds a 7-residue CA trace where the first badGaps CA-CA
//spacings are stretched out of tolerance, giving exactly badGaps
//bond-length violations and nothing else.
func caTrace(Te *testing.T, badGaps int) *synth.Molecule {
	atoms := make([]*synth.Atom, 0, len(traceNames))
	data := make([]float64, 0, 3*len(traceNames))
	x := 0.0
	for i, res := range traceNames {
		atoms = append(atoms, &synth.Atom{Name: "CA", Id: i + 1, Molname: res, Molid: i + 1, Chain: 'A', Symbol: "C"})
		data = append(data, x, 0, 0)
		if i < badGaps {
			x += synth.CADistance + 0.5
		} else {
			x += synth.CADistance
		}
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

//sequenced returns a Generator that replays the given molecules in order.
func sequenced(Te *testing.T, mols []*synth.Molecule) Generator {
	i := 0
	return func() (*synth.Molecule, error) {
		if i >= len(mols) {
			Te.Fatal("generator called more times than expected")
		}
		mol := mols[i]
		i++
		return mol, nil
	}
}

func TestRunSingleShot(Te *testing.T) {
	out, err := Run(sequenced(Te, []*synth.Molecule{caTrace(Te, 0)}), SingleShot, 99)
	if err != nil {
		Te.Fatal(err)
	}
	if !out.Accepted || out.Attempts != 1 {
		Te.Errorf("clean single shot: accepted=%v attempts=%d", out.Accepted, out.Attempts)
	}
	out, err = Run(sequenced(Te, []*synth.Molecule{caTrace(Te, 2)}), SingleShot, 99)
	if err != nil {
		Te.Fatal(err)
	}
	if out.Accepted {
		Te.Error("a structure with violations should not be accepted")
	}
	if out.Mol == nil || len(out.Report.Violations) != 2 {
		Te.Error("single shot should still return the structure and its report")
	}
}

func TestRunGuaranteeValid(Te *testing.T) {
	mols := []*synth.Molecule{caTrace(Te, 2), caTrace(Te, 2), caTrace(Te, 0)}
	out, err := Run(sequenced(Te, mols), GuaranteeValid, 10)
	if err != nil {
		Te.Fatal(err)
	}
	if !out.Accepted || out.Attempts != 3 {
		Te.Errorf("wanted acceptance on attempt 3, got accepted=%v attempts=%d", out.Accepted, out.Attempts)
	}
	if out.Mol != mols[2] {
		Te.Error("kept the wrong candidate")
	}

	//budget exhaustion keeps the last report
	out, err = Run(sequenced(Te, mols[:2]), GuaranteeValid, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if out.Accepted || out.Attempts != 2 || len(out.Report.Violations) != 2 {
		Te.Errorf("exhausted run: accepted=%v attempts=%d violations=%d", out.Accepted, out.Attempts, len(out.Report.Violations))
	}
}

func TestRunGeneratorFailure(Te *testing.T) {
	fail := func() (*synth.Molecule, error) {
		return nil, synth.NewError("boom")
	}
	if _, err := Run(fail, GuaranteeValid, 3); err == nil {
		Te.Error("all attempts failing should surface an error")
	}
	if _, err := Run(fail, SingleShot, 1); err == nil {
		Te.Error("single shot should pass the generation error through")
	}
}

func TestRunInvalidInput(Te *testing.T) {
	calls := 0
	gen := func() (*synth.Molecule, error) {
		calls++
		_, err := synth.ResolveSequence(0, "ACXE", false, nil)
		return nil, err
	}
	_, err := Run(gen, GuaranteeValid, 5)
	if err == nil {
		Te.Fatal("a bad residue code should surface as an error")
	}
	if calls != 1 {
		Te.Errorf("invalid input should not be retried, generator ran %d times", calls)
	}
	if err.Error() != "Invalid 1-letter amino acid code: X" {
		Te.Errorf("wanted the parse failure verbatim, got %q", err.Error())
	}
	calls = 0
	if _, err = Run(gen, BestOfN, 4); err == nil || calls != 1 {
		Te.Errorf("best-of-n should also abort on invalid input, err=%v calls=%d", err, calls)
	}
}

func TestRunBestOfN(Te *testing.T) {
	mols := []*synth.Molecule{caTrace(Te, 2), caTrace(Te, 1), caTrace(Te, 2)}
	out, err := Run(sequenced(Te, mols), BestOfN, 3)
	if err != nil {
		Te.Fatal(err)
	}
	if out.Mol != mols[1] {
		Te.Error("best-of-n did not keep the candidate with fewest violations")
	}
	if out.Accepted || out.Attempts != 3 || len(out.Report.Violations) != 1 {
		Te.Errorf("best-of-n: accepted=%v attempts=%d violations=%d", out.Accepted, out.Attempts, len(out.Report.Violations))
	}

	//ties go to the earlier candidate
	mols = []*synth.Molecule{caTrace(Te, 2), caTrace(Te, 1), caTrace(Te, 1)}
	out, err = Run(sequenced(Te, mols), BestOfN, 3)
	if err != nil {
		Te.Fatal(err)
	}
	if out.Mol != mols[1] {
		Te.Error("tie should keep the earlier candidate")
	}
}

func TestCARMSD(Te *testing.T) {
	a := caTrace(Te, 0)
	b := a.Copy()
	r, err := CARMSD(a, b)
	if err != nil {
		Te.Fatal(err)
	}
	if r > 1e-9 {
		Te.Errorf("identical traces should have zero RMSD, got %g", r)
	}
	//a rigid translation doesn't change the RMSD
	shift, err := v3.NewMatrix([]float64{5, -2, 1})
	if err != nil {
		Te.Fatal(err)
	}
	b.Coords.AddVec(b.Coords, shift)
	r, err = CARMSD(a, b)
	if err != nil {
		Te.Fatal(err)
	}
	if r > 1e-9 {
		Te.Errorf("translated trace should superimpose exactly, got %g", r)
	}
	//a real deformation shows up
	b.Coords.Set(3, 1, 2.0)
	r, err = CARMSD(a, b)
	if err != nil {
		Te.Fatal(err)
	}
	if r < 0.1 {
		Te.Errorf("deformed trace should have a real RMSD, got %g", r)
	}
	//mismatched lengths are an error
	short := caTrace(Te, 0)
	short.Atoms = short.Atoms[:3]
	if _, err := CARMSD(a, short); err == nil {
		Te.Error("expected an error for traces of different length")
	}
}

func TestRefineClashesFixesOne(Te *testing.T) {
	mol := caTrace(Te, 0)
	//park residue 5 on top of residue 1
	mol.Coords.Set(4, 0, 0.5)
	mol.Coords.Set(4, 1, 0.5)
	mol.Coords.Set(4, 2, 0)
	before := check.Validate(mol).Count(check.StericClash)
	if before != 1 {
		Te.Fatalf("setup should create 1 clash, got %d", before)
	}
	origX := mol.Coords.At(4, 0)

	res := RefineClashes(mol, 5)
	if res.Report.Count(check.StericClash) != 0 {
		Te.Error("final report still carries the clash")
	}
	if res.Iterations != 1 {
		Te.Errorf("a single clash should resolve in 1 round, got %d", res.Iterations)
	}
	//the parked residue breaks two spacings too, and pushing it off
	//residue 1 breaks a third. The counts must say so rather than
	//pretend the structure got cleaner.
	if res.Initial != 3 || res.Remaining != 3 {
		Te.Errorf("wanted 3 -> 3 total violations, got %d -> %d", res.Initial, res.Remaining)
	}
	//the input molecule is untouched
	if math.Abs(mol.Coords.At(4, 0)-origX) > 1e-12 {
		Te.Error("repair mutated its input")
	}
	if check.Validate(mol).Count(check.StericClash) != 1 {
		Te.Error("input molecule lost its clash")
	}
}

//sulfurPair builds two lone sulfur atoms in non-adjacent residues,
//separated by d along x. Anything under the 2.88 A S-S clash limit
//clashes, and with no backbone there are no other checks to trip.
func sulfurPair(Te *testing.T, d float64) *synth.Molecule {
	atoms := []*synth.Atom{
		{Name: "SG", Id: 1, Molname: "CYS", Molid: 1, Chain: 'A', Symbol: "S"},
		{Name: "SG", Id: 2, Molname: "CYS", Molid: 3, Chain: 'A', Symbol: "S"},
	}
	coords, err := v3.NewMatrix([]float64{0, 0, 0, d, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := synth.NewMolecule(atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	return mol
}

func TestRefineClashesImproves(Te *testing.T) {
	mol := sulfurPair(Te, 1.0)
	res := RefineClashes(mol, 5)
	if res.Initial != 1 || res.Remaining != 0 || res.Iterations != 1 {
		Te.Errorf("wanted 1 -> 0 violations in 1 round, got %d -> %d in %d", res.Initial, res.Remaining, res.Iterations)
	}
	if !res.Report.Valid() {
		Te.Error("separated pair should validate cleanly")
	}
}

func TestRefineClashesStopsWithoutProgress(Te *testing.T) {
	//coincident atoms get nudged along an arbitrary axis with a unit
	//proxy distance, which is not enough to clear the S-S limit. The
	//second round can't do better, so the loop must stop after one
	//round and report the unchanged count instead of burning the
	//whole budget.
	mol := sulfurPair(Te, 0)
	res := RefineClashes(mol, 5)
	if res.Iterations != 1 {
		Te.Errorf("a no-progress round should stop the loop, got %d rounds", res.Iterations)
	}
	if res.Initial != 1 || res.Remaining != res.Initial {
		Te.Errorf("wanted the count unchanged at 1, got %d -> %d", res.Initial, res.Remaining)
	}
	if res.Report.Count(check.StericClash) != 1 {
		Te.Error("final report should still carry the clash")
	}
}

func TestRefineClashesCleanInput(Te *testing.T) {
	mol := caTrace(Te, 0)
	res := RefineClashes(mol, 3)
	if res.Initial != 0 || res.Remaining != 0 || res.Iterations != 0 {
		Te.Errorf("clean input should return immediately, got %+v", res)
	}
	if !res.Report.Valid() {
		Te.Error("clean input should stay valid")
	}
}
