/*
 * main.go, part of synthpdb.
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

//synthpdb generates synthetic linear peptide structures in PDB format,
//optionally validating and refining them.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	synth "github.com/rmera/synthpdb"
	"github.com/rmera/synthpdb/check"
	"github.com/rmera/synthpdb/refine"
)

func main() {
	length := flag.Int("length", 10, "number of residues for a random sequence")
	sequence := flag.String("sequence", "", "explicit sequence, 1-letter contiguous (ACDE) or 3-letter hyphenated (ALA-CYS-ASP-GLU); overrides -length")
	fullAtom := flag.Bool("full-atom", false, "build backbone and heavy side-chain atoms instead of a CA trace")
	useRotamers := flag.Bool("use-rotamers", false, "sample side-chain conformations from the rotamer library (implies -full-atom)")
	plausible := flag.Bool("plausible-frequencies", false, "draw random sequences following natural amino-acid frequencies")
	validate := flag.Bool("validate", false, "validate the structure and report violations")
	guaranteeValid := flag.Bool("guarantee-valid", false, "regenerate until the structure validates cleanly (implies -validate)")
	maxAttempts := flag.Int("max-attempts", 100, "attempt budget for -guarantee-valid")
	bestOfN := flag.Int("best-of-n", 1, "generate N candidates and keep the one with fewest violations; overrides -guarantee-valid when N>1")
	refineClashes := flag.Int("refine-clashes", 0, "run up to this many rounds of steric-clash repair on the final structure")
	seed := flag.Uint64("seed", 0, "random seed; 0 seeds from the clock")
	output := flag.String("output", "", "output file name; empty picks a descriptive default")
	compress := flag.Bool("compress", false, "compress the output with zstd (adds .zst to the name)")
	ramaPlot := flag.String("rama-plot", "", "also write a Ramachandran plot PNG with this base name")
	quiet := flag.Bool("quiet", false, "suppress progress logging")
	flag.Parse()

	if *quiet {
		log.SetOutput(io.Discard)
	}
	if *sequence == "" && *length <= 0 {
		fmt.Fprintln(os.Stderr, "synthpdb: Length must be a positive integer when no sequence is provided")
		os.Exit(1)
	}
	if *useRotamers {
		*fullAtom = true
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewSource(*seed)
	builder := synth.NewBuilder(*fullAtom, *useRotamers, src)

	//the generator shares one random source, so every retry draws a
	//fresh sequence and fresh rotamers
	gen := func() (*synth.Molecule, error) {
		seq, err := synth.ResolveSequence(*length, *sequence, *plausible, src)
		if err != nil {
			return nil, err
		}
		return builder.Build(seq)
	}

	policy := refine.SingleShot
	budget := 1
	switch {
	case *bestOfN > 1:
		policy = refine.BestOfN
		budget = *bestOfN
	case *guaranteeValid:
		policy = refine.GuaranteeValid
		budget = *maxAttempts
		*validate = true
	}

	out, err := refine.Run(gen, policy, budget)
	if err != nil {
		fmt.Fprintf(os.Stderr, "synthpdb: %v\n", err)
		os.Exit(1)
	}
	if *refineClashes > 0 {
		res := refine.RefineClashes(out.Mol, *refineClashes)
		log.Printf("clash repair: %d -> %d violations in %d rounds", res.Initial, res.Remaining, res.Iterations)
		out.Mol = res.Mol
		out.Report = res.Report
		out.Accepted = res.Report.Valid()
	}

	name := *output
	if name == "" {
		name = defaultName(*sequence, out.Mol.NResidues())
	}
	if *compress && !strings.HasSuffix(name, ".zst") {
		name += ".zst"
	}
	if err := synth.WritePDBFile(name, synth.PDBString(out.Mol)); err != nil {
		fmt.Fprintf(os.Stderr, "synthpdb: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(name)
	log.Printf("%d residues, %d atoms, %.1f Da", out.Mol.NResidues(), out.Mol.Len(), out.Mol.Mass())

	if *ramaPlot != "" {
		if err := check.RamaPlot(out.Mol, *ramaPlot, "Ramachandran plot"); err != nil {
			log.Printf("rama plot failed: %v", err)
		}
	}
	if *validate || *bestOfN > 1 {
		report(out)
	}
	if *guaranteeValid && !out.Accepted {
		fmt.Fprintf(os.Stderr, "synthpdb: no valid structure in %d attempts\n", out.Attempts)
		os.Exit(1)
	}
}

func report(out *refine.Outcome) {
	if out.Report.Valid() {
		log.Printf("structure is valid (%d attempts)", out.Attempts)
		return
	}
	log.Printf("%d violations after %d attempts:", len(out.Report.Violations), out.Attempts)
	for _, v := range out.Report.Violations {
		log.Printf("  %s", v)
	}
}

//defaultName builds the output file name: custom peptides carry a
//sequence tag of at most 10 characters, random ones their residue
//count, both a timestamp so repeated runs don't overwrite each other.
func defaultName(sequence string, nres int) string {
	stamp := time.Now().Format("20060102-150405")
	if sequence != "" {
		tag := strings.ReplaceAll(strings.ToUpper(sequence), "-", "")
		if len(tag) > 10 {
			tag = tag[:10]
		}
		return fmt.Sprintf("custom_peptide_%s_%s.pdb", tag, stamp)
	}
	return fmt.Sprintf("random_linear_peptide_%d_%s.pdb", nres, stamp)
}
