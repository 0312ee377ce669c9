/*
 * refine.go, part of synthpdb.
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

//Package refine wraps structure generation and validation into retry
//policies, and provides a simple geometric repair for steric clashes.
package refine

import (
	"log"

	synth "github.com/rmera/synthpdb"
	"github.com/rmera/synthpdb/check"
)

//A Generator produces one candidate structure per call. Successive
//calls are expected to produce different candidates (a stochastic
//builder, typically).
type Generator func() (*synth.Molecule, error)

//Policy selects how many candidates to generate and which to keep.
type Policy int

const (
	//SingleShot generates one structure and reports whether it
	//validates, accepting it either way.
	SingleShot Policy = iota
	//GuaranteeValid regenerates until a structure validates cleanly or
	//the attempt budget runs out.
	GuaranteeValid
	//BestOfN generates exactly N structures and keeps the one with the
	//fewest violations. Ties go to the earlier candidate.
	BestOfN
)

func (p Policy) String() string {
	switch p {
	case SingleShot:
		return "single-shot"
	case GuaranteeValid:
		return "guarantee-valid"
	case BestOfN:
		return "best-of-n"
	}
	return "unknown"
}

//An Outcome is the result of running a policy. Mol and Report refer to
//the kept candidate; Accepted says whether that candidate validated
//cleanly. Attempts counts every generation call made, including failed
//ones.
type Outcome struct {
	Accepted bool
	Mol      *synth.Molecule
	Report   *check.Report
	Attempts int
}

//Run generates structures with gen under the given policy. The budget
//is the attempt limit for GuaranteeValid and the candidate count for
//BestOfN; SingleShot ignores it. Transient generation errors under the
//retrying policies are logged and consume an attempt; invalid-input
//errors abort immediately, since retrying the same input cannot
//succeed. Run only returns an error when no candidate at all could be
//generated.
func Run(gen Generator, policy Policy, budget int) (*Outcome, error) {
	switch policy {
	case GuaranteeValid:
		return runGuaranteeValid(gen, budget)
	case BestOfN:
		return runBestOfN(gen, budget)
	}
	mol, err := gen()
	if err != nil {
		return nil, err
	}
	rep := check.Validate(mol)
	return &Outcome{Accepted: rep.Valid(), Mol: mol, Report: rep, Attempts: 1}, nil
}

func runGuaranteeValid(gen Generator, budget int) (*Outcome, error) {
	if budget < 1 {
		budget = 1
	}
	out := new(Outcome)
	for out.Attempts < budget {
		out.Attempts++
		mol, err := gen()
		if err != nil {
			if _, bad := err.(synth.InputError); bad {
				return nil, err
			}
			log.Printf("synthpdb: generation attempt %d failed: %v", out.Attempts, err)
			continue
		}
		rep := check.Validate(mol)
		out.Mol = mol
		out.Report = rep
		if rep.Valid() {
			out.Accepted = true
			return out, nil
		}
		log.Printf("synthpdb: attempt %d: %d violations, retrying", out.Attempts, len(rep.Violations))
	}
	if out.Mol == nil {
		return nil, synth.NewError("all generation attempts failed")
	}
	return out, nil
}

func runBestOfN(gen Generator, n int) (*Outcome, error) {
	if n < 1 {
		n = 1
	}
	out := new(Outcome)
	best := -1
	for i := 0; i < n; i++ {
		out.Attempts++
		mol, err := gen()
		if err != nil {
			if _, bad := err.(synth.InputError); bad {
				return nil, err
			}
			log.Printf("synthpdb: generation attempt %d failed: %v", out.Attempts, err)
			continue
		}
		rep := check.Validate(mol)
		if best >= 0 {
			//diversity diagnostic; failures here are not fatal
			if r, err := CARMSD(out.Mol, mol); err == nil {
				log.Printf("synthpdb: candidate %d: %d violations, CA-RMSD %.2f A to current best", i+1, len(rep.Violations), r)
			}
		}
		if best < 0 || len(rep.Violations) < best {
			best = len(rep.Violations)
			out.Mol = mol
			out.Report = rep
		}
	}
	if out.Mol == nil {
		return nil, synth.NewError("all generation attempts failed")
	}
	out.Accepted = out.Report.Valid()
	return out, nil
}
