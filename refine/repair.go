/*
 * repair.go, part of synthpdb.
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
	"log"

	synth "github.com/rmera/synthpdb"
	"github.com/rmera/synthpdb/check"
	v3 "github.com/rmera/synthpdb/v3"
)

//nudgePad is the extra separation, in A, added past the clash limit
//when pushing a pair apart, so the pair doesn't land exactly on the
//threshold.
const nudgePad = 0.05

//A RepairResult holds the repaired structure and what the repair
//achieved. Mol is always a copy; the input molecule is never touched.
type RepairResult struct {
	Mol        *synth.Molecule
	Report     *check.Report
	Iterations int
	Initial    int //total violations before repair
	Remaining  int //total violations after repair
}

//RefineClashes tries to remove steric clashes by nudging each clashing
//pair apart along its separation vector, half the missing distance per
//atom. It runs up to maxIter rounds of find-and-nudge, revalidating
//after each, and stops early as soon as a round fails to reduce the
//total violation count. Nudging moves atoms without regard for bonded
//geometry, so a round can trade a clash for a new bond or angle
//violation; counting every violation keeps such trades from passing as
//progress. The returned report says what the structure looks like
//afterwards.
func RefineClashes(mol *synth.Molecule, maxIter int) *RepairResult {
	if mol == nil {
		panic(synth.ErrNilAtoms)
	}
	if maxIter < 1 {
		maxIter = 1
	}
	work := mol.Copy()
	rep := check.Validate(work)
	out := &RepairResult{Mol: work, Report: rep, Initial: len(rep.Violations)}
	out.Remaining = out.Initial
	if rep.Count(check.StericClash) == 0 {
		return out
	}
	rowOf := make(map[int]int, work.Len())
	for i, at := range work.Atoms {
		rowOf[at.Id] = i
	}
	for out.Iterations < maxIter {
		out.Iterations++
		for _, v := range rep.Violations {
			if v.Kind != check.StericClash {
				continue
			}
			nudgeApart(work, rowOf[v.Atoms[0]], rowOf[v.Atoms[1]], v.Expected)
		}
		rep = check.Validate(work)
		total := len(rep.Violations)
		log.Printf("synthpdb: clash repair round %d: %d -> %d violations", out.Iterations, out.Remaining, total)
		improved := total < out.Remaining
		out.Report = rep
		out.Remaining = total
		if rep.Count(check.StericClash) == 0 || !improved {
			break
		}
	}
	return out
}

//nudgeApart moves the atoms in rows i and j away from each other along
//their separation vector until they sit nudgePad past the limit. If
//the two atoms coincide the direction is arbitrary, so the x axis is
//used.
func nudgeApart(mol *synth.Molecule, i, j int, limit float64) {
	vi := mol.Coords.VecView(i)
	vj := mol.Coords.VecView(j)
	dir := v3.Zeros(1)
	dir.Sub(vj, vi)
	d := dir.Norm()
	if d < 1e-6 {
		dir.Set(0, 0, 1)
		dir.Set(0, 1, 0)
		dir.Set(0, 2, 0)
		d = 1
	}
	if d >= limit {
		return //a previous nudge already separated them
	}
	dir.Unit(dir)
	dir.Scale((limit-d)/2+nudgePad, dir)
	vi.Sub(vi, dir)
	vj.Add(vj, dir)
}
