/*
 * check.go, part of synthpdb.
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

//Package check validates protein structures for geometric and
//statistical plausibility. Validation never mutates the molecule and
//running it twice on the same structure gives the same report.
package check

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	synth "github.com/rmera/synthpdb"
)

//Kind labels the class of a violation.
type Kind int

const (
	BondLength Kind = iota
	BondAngle
	Ramachandran
	StericClash
	PeptidePlane
	SequenceImprobability
)

func (k Kind) String() string {
	switch k {
	case BondLength:
		return "bond-length"
	case BondAngle:
		return "bond-angle"
	case Ramachandran:
		return "ramachandran"
	case StericClash:
		return "steric-clash"
	case PeptidePlane:
		return "peptide-plane"
	case SequenceImprobability:
		return "sequence-improbability"
	}
	return "unknown"
}

//Tunable thresholds. The defaults match what the generator produces,
//so a freshly built structure validates cleanly.
var (
	//BondTol is the allowed deviation from the ideal bond length, in A.
	BondTol = 0.05
	//AngleTol is the allowed deviation from the ideal bond angle, in degrees.
	AngleTol = 5.0
	//ClashFraction scales the sum of van der Waals radii below which
	//two non-bonded atoms are considered clashing.
	ClashFraction = 0.8
	//OmegaTol is the allowed deviation of the peptide-bond dihedral
	//from planarity, in degrees.
	OmegaTol = 20.0
	//MaxRun is the longest run of one amino acid that is still plausible.
	MaxRun = 4
	//CompositionMinLen is the shortest sequence whose composition is
	//tested; shorter ones are too noisy for the chi-square statistic.
	CompositionMinLen = 50
	//CompositionCritical is the chi-square statistic (19 degrees of
	//freedom) above which the composition is flagged.
	CompositionCritical = 60.0
)

//A Violation describes one failed check. Atoms holds the serials of
//the atoms involved, Residues the residue numbers.
type Violation struct {
	Kind     Kind
	Atoms    []int
	Residues []int
	Measured float64
	Expected float64
	Message  string
}

func (v Violation) String() string {
	return fmt.Sprintf("[%s] %s", v.Kind, v.Message)
}

//A Report collects the violations found in one structure, in the order
//the checks ran.
type Report struct {
	Violations []Violation
}

//Valid is true when no check failed.
func (r *Report) Valid() bool {
	return len(r.Violations) == 0
}

func (r *Report) add(v Violation) {
	r.Violations = append(r.Violations, v)
}

//Count returns the number of violations of the given kind.
func (r *Report) Count(k Kind) int {
	n := 0
	for _, v := range r.Violations {
		if v.Kind == k {
			n++
		}
	}
	return n
}

func (r *Report) String() string {
	if r.Valid() {
		return "no violations"
	}
	lines := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		lines = append(lines, v.String())
	}
	return strings.Join(lines, "\n")
}

//residue is one residue's atoms, indexed by PDB name so checks can ask
//for "the CA" or "the CG1" directly.
type residue struct {
	name  string
	molid int
	atoms map[string]int //atom name -> coordinate row
}

func (r *residue) has(names ...string) bool {
	for _, n := range names {
		if _, ok := r.atoms[n]; !ok {
			return false
		}
	}
	return true
}

func splitResidues(mol *synth.Molecule) []*residue {
	var out []*residue
	var cur *residue
	for i, at := range mol.Atoms {
		if cur == nil || at.Molid != cur.molid {
			cur = &residue{name: at.Molname, molid: at.Molid, atoms: map[string]int{}}
			out = append(out, cur)
		}
		cur.atoms[at.Name] = i
	}
	return out
}

//Validate runs every check on the molecule, always in the same order:
//bond lengths, bond angles, Ramachandran, steric clashes, peptide-bond
//planarity and, last, sequence plausibility. It accepts both full-atom
//structures and bare CA traces; checks that need atoms a trace doesn't
//have are skipped for it.
func Validate(mol *synth.Molecule) *Report {
	rep := new(Report)
	if mol == nil || mol.Len() == 0 {
		return rep
	}
	res := splitResidues(mol)
	checkBondLengths(mol, res, rep)
	checkBondAngles(mol, res, rep)
	checkRamachandran(mol, res, rep)
	checkClashes(mol, rep)
	checkPeptidePlanes(mol, res, rep)
	checkSequence(mol, rep)
	return rep
}

func dist(mol *synth.Molecule, i, j int) float64 {
	return floats.Distance(mol.Coords.RawRowView(i), mol.Coords.RawRowView(j), 2)
}

func angleDeg(mol *synth.Molecule, i, j, k int) float64 {
	return synth.Rad2Deg(synth.AngleAt(mol.Coords.VecView(i), mol.Coords.VecView(j), mol.Coords.VecView(k)))
}

func dihedralDeg(mol *synth.Molecule, i, j, k, l int) float64 {
	return synth.Rad2Deg(synth.Dihedral(mol.Coords.VecView(i), mol.Coords.VecView(j), mol.Coords.VecView(k), mol.Coords.VecView(l)))
}

func bondViolation(mol *synth.Molecule, rep *Report, i, j int, expected float64) {
	d := dist(mol, i, j)
	if math.Abs(d-expected) <= BondTol {
		return
	}
	a, b := mol.Atoms[i], mol.Atoms[j]
	rep.add(Violation{
		Kind:     BondLength,
		Atoms:    []int{a.Id, b.Id},
		Residues: []int{a.Molid, b.Molid},
		Measured: d,
		Expected: expected,
		Message:  fmt.Sprintf("bond %s%d:%s-%s%d:%s is %.3f A, expected %.3f", a.Molname, a.Molid, a.Name, b.Molname, b.Molid, b.Name, d, expected),
	})
}

//checkBondLengths verifies backbone and side-chain bonds against their
//ideal lengths. On a CA-only trace only the CA(i)-CA(i+1) spacing is
//checked.
func checkBondLengths(mol *synth.Molecule, res []*residue, rep *Report) {
	for i, r := range res {
		if !r.has("N") { //CA trace
			if r.has("CA") && i < len(res)-1 && res[i+1].has("CA") && !res[i+1].has("N") {
				bondViolation(mol, rep, r.atoms["CA"], res[i+1].atoms["CA"], synth.CADistance)
			}
			continue
		}
		if r.has("N", "CA") {
			bondViolation(mol, rep, r.atoms["N"], r.atoms["CA"], synth.BondNCA)
		}
		if r.has("CA", "C") {
			bondViolation(mol, rep, r.atoms["CA"], r.atoms["C"], synth.BondCAC)
		}
		if r.has("C", "O") {
			bondViolation(mol, rep, r.atoms["C"], r.atoms["O"], synth.BondCO)
		}
		if i < len(res)-1 && r.has("C") && res[i+1].has("N") {
			bondViolation(mol, rep, r.atoms["C"], res[i+1].atoms["N"], synth.BondCN)
		}
		for _, spec := range synth.SideChains[r.name] {
			if r.has(spec.Name, spec.Parents[2]) {
				bondViolation(mol, rep, r.atoms[spec.Parents[2]], r.atoms[spec.Name], spec.Length)
			}
		}
	}
}

func angleViolation(mol *synth.Molecule, rep *Report, i, j, k int, expected float64) {
	ang := angleDeg(mol, i, j, k)
	if math.Abs(ang-expected) <= AngleTol {
		return
	}
	a, b, c := mol.Atoms[i], mol.Atoms[j], mol.Atoms[k]
	rep.add(Violation{
		Kind:     BondAngle,
		Atoms:    []int{a.Id, b.Id, c.Id},
		Residues: []int{b.Molid},
		Measured: ang,
		Expected: expected,
		Message:  fmt.Sprintf("angle %s-%s-%s at %s%d is %.1f deg, expected %.1f", a.Name, b.Name, c.Name, b.Molname, b.Molid, ang, expected),
	})
}

func checkBondAngles(mol *synth.Molecule, res []*residue, rep *Report) {
	for i, r := range res {
		if r.has("N", "CA", "C") {
			angleViolation(mol, rep, r.atoms["N"], r.atoms["CA"], r.atoms["C"], synth.AngleNCAC)
		}
		if r.has("CA", "C", "O") {
			angleViolation(mol, rep, r.atoms["CA"], r.atoms["C"], r.atoms["O"], synth.AngleCACO)
		}
		if i < len(res)-1 && r.has("CA", "C") && res[i+1].has("N") {
			angleViolation(mol, rep, r.atoms["CA"], r.atoms["C"], res[i+1].atoms["N"], synth.AngleCACN)
			if res[i+1].has("CA") {
				angleViolation(mol, rep, r.atoms["C"], res[i+1].atoms["N"], res[i+1].atoms["CA"], synth.AngleCNCA)
			}
		}
		for _, spec := range synth.SideChains[r.name] {
			if r.has(spec.Name, spec.Parents[1], spec.Parents[2]) {
				angleViolation(mol, rep, r.atoms[spec.Parents[1]], r.atoms[spec.Parents[2]], r.atoms[spec.Name], spec.Angle)
			}
		}
	}
}

//ramaRegion is an axis-aligned box in phi/psi space, in degrees.
type ramaRegion struct {
	PhiMin, PhiMax float64
	PsiMin, PsiMax float64
}

func (rr ramaRegion) contains(phi, psi float64) bool {
	return phi >= rr.PhiMin && phi <= rr.PhiMax && psi >= rr.PsiMin && psi <= rr.PsiMax
}

//RamaRegions are the allowed phi/psi boxes. They are coarse by design:
//a broad beta strip (split in two because psi wraps at 180) and the
//right-handed alpha basin.
var RamaRegions = []ramaRegion{
	{-180, -45, 90, 180},   //beta
	{-180, -45, -180, -150}, //beta, psi wrapped
	{-160, -20, -120, 50},  //alpha R
}

//prolinePhi is the relaxed phi interval accepted for proline, whose
//ring locks phi near -65 but tolerates a wider spread than the
//standard boxes allow.
var prolinePhi = [2]float64{-120, -30}

//PhiPsi returns the backbone dihedrals of residue i (0-based index
//into the molecule's residues), in degrees. It needs the previous
//residue's C and the next residue's N; ok is false at the termini or
//when atoms are missing.
func PhiPsi(mol *synth.Molecule, res []*residue, i int) (phi, psi float64, ok bool) {
	if i <= 0 || i >= len(res)-1 {
		return 0, 0, false
	}
	r := res[i]
	if !r.has("N", "CA", "C") || !res[i-1].has("C") || !res[i+1].has("N") {
		return 0, 0, false
	}
	phi = dihedralDeg(mol, res[i-1].atoms["C"], r.atoms["N"], r.atoms["CA"], r.atoms["C"])
	psi = dihedralDeg(mol, r.atoms["N"], r.atoms["CA"], r.atoms["C"], res[i+1].atoms["N"])
	return phi, psi, true
}

func checkRamachandran(mol *synth.Molecule, res []*residue, rep *Report) {
	for i, r := range res {
		phi, psi, ok := PhiPsi(mol, res, i)
		if !ok {
			continue
		}
		if r.name == "GLY" { //glycine goes everywhere
			continue
		}
		if r.name == "PRO" {
			if phi < prolinePhi[0] || phi > prolinePhi[1] {
				rep.add(Violation{
					Kind:     Ramachandran,
					Residues: []int{r.molid},
					Measured: phi,
					Message:  fmt.Sprintf("PRO%d phi %.1f deg outside [%.0f, %.0f]", r.molid, phi, prolinePhi[0], prolinePhi[1]),
				})
			}
			continue
		}
		allowed := false
		for _, region := range RamaRegions {
			if region.contains(phi, psi) {
				allowed = true
				break
			}
		}
		if !allowed {
			rep.add(Violation{
				Kind:     Ramachandran,
				Residues: []int{r.molid},
				Measured: phi,
				Message:  fmt.Sprintf("%s%d phi/psi (%.1f, %.1f) outside allowed regions", r.name, r.molid, phi, psi),
			})
		}
	}
}

func isBackbone(name string) bool {
	return name == "N" || name == "CA" || name == "C" || name == "O"
}

//checkClashes flags non-bonded atom pairs closer than ClashFraction
//times the sum of their van der Waals radii. Pairs within one residue
//are skipped, as are backbone-backbone pairs of adjacent residues,
//because both follow bonded geometry already covered by the bond and
//angle checks.
func checkClashes(mol *synth.Molecule, rep *Report) {
	n := mol.Len()
	for i := 0; i < n; i++ {
		a := mol.Atoms[i]
		for j := i + 1; j < n; j++ {
			b := mol.Atoms[j]
			if a.Molid == b.Molid {
				continue
			}
			if abs(a.Molid-b.Molid) == 1 && isBackbone(a.Name) && isBackbone(b.Name) {
				continue
			}
			limit := ClashFraction * (synth.VdwRadius(a.Symbol) + synth.VdwRadius(b.Symbol))
			d := dist(mol, i, j)
			if d < limit {
				rep.add(Violation{
					Kind:     StericClash,
					Atoms:    []int{a.Id, b.Id},
					Residues: []int{a.Molid, b.Molid},
					Measured: d,
					Expected: limit,
					Message:  fmt.Sprintf("clash %s%d:%s-%s%d:%s at %.2f A (limit %.2f)", a.Molname, a.Molid, a.Name, b.Molname, b.Molid, b.Name, d, limit),
				})
			}
		}
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

//checkPeptidePlanes verifies that every omega dihedral
//(CA-C-N(+1)-CA(+1)) is within OmegaTol of planar trans.
func checkPeptidePlanes(mol *synth.Molecule, res []*residue, rep *Report) {
	for i := 0; i < len(res)-1; i++ {
		r, next := res[i], res[i+1]
		if !r.has("CA", "C") || !next.has("N", "CA") {
			continue
		}
		omega := dihedralDeg(mol, r.atoms["CA"], r.atoms["C"], next.atoms["N"], next.atoms["CA"])
		if 180-math.Abs(omega) > OmegaTol {
			rep.add(Violation{
				Kind:     PeptidePlane,
				Residues: []int{r.molid, next.molid},
				Measured: omega,
				Expected: 180,
				Message:  fmt.Sprintf("omega %d-%d is %.1f deg, not planar trans", r.molid, next.molid, omega),
			})
		}
	}
}

//checkSequence runs last: it flags implausibly long runs of one amino
//acid and, for sequences long enough to test, a composition that
//deviates too much from natural frequencies (chi-square over the 20
//standard residues).
func checkSequence(mol *synth.Molecule, rep *Report) {
	seq := mol.Sequence()
	run := 1
	for i := 1; i < len(seq); i++ {
		if seq[i] == seq[i-1] {
			run++
			if run == MaxRun+1 { //flag each run once
				rep.add(Violation{
					Kind:     SequenceImprobability,
					Residues: []int{i + 1},
					Measured: float64(run),
					Expected: float64(MaxRun),
					Message:  fmt.Sprintf("run of %s longer than %d at residue %d", seq[i], MaxRun, i+1),
				})
			}
		} else {
			run = 1
		}
	}
	if len(seq) < CompositionMinLen {
		return
	}
	counts := make(map[string]int, 20)
	for _, r := range seq {
		counts[r]++
	}
	obs := make([]float64, 0, 20)
	exp := make([]float64, 0, 20)
	for _, aa := range synth.StandardAminoAcids {
		obs = append(obs, float64(counts[aa]))
		exp = append(exp, synth.AminoAcidFrequencies[aa]*float64(len(seq)))
	}
	chi2 := stat.ChiSquare(obs, exp)
	if chi2 > CompositionCritical {
		rep.add(Violation{
			Kind:     SequenceImprobability,
			Measured: chi2,
			Expected: CompositionCritical,
			Message:  fmt.Sprintf("composition chi-square %.1f exceeds %.1f", chi2, CompositionCritical),
		})
	}
}

//RamaAngles returns the phi/psi pairs of every interior residue, in
//degrees, for plotting.
func RamaAngles(mol *synth.Molecule) (phis, psis []float64) {
	res := splitResidues(mol)
	for i := range res {
		phi, psi, ok := PhiPsi(mol, res, i)
		if !ok {
			continue
		}
		phis = append(phis, phi)
		psis = append(psis, psi)
	}
	return phis, psis
}
