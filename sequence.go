/*
 * sequence.go, part of synthpdb.
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
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

//ResolveSequence turns a user request into an ordered list of 3-letter
//residue names.
//
//If seqstr is not empty it is parsed, case-insensitively, either as a
//contiguous string of 1-letter codes ("AGV") or as hyphen-separated
//3-letter codes ("ALA-GLY-VAL"), and length is ignored. The first
//invalid code found is reported in the returned error.
//
//With an empty seqstr, length residues are drawn at random from the 20
//standard amino acids using src: uniformly, or proportionally to the
//natural-abundance table when plausible is set. A non-positive length
//yields an empty sequence, not an error; rejecting that case is the
//caller's job when no sequence was given either.
func ResolveSequence(length int, seqstr string, plausible bool, src rand.Source) ([]string, error) {
	if seqstr != "" {
		return parseSequence(seqstr)
	}
	if length <= 0 {
		return []string{}, nil
	}
	if plausible {
		return samplePlausible(length, src), nil
	}
	rng := rand.New(src)
	seq := make([]string, length)
	for i := range seq {
		seq[i] = StandardAminoAcids[rng.Intn(len(StandardAminoAcids))]
	}
	return seq, nil
}

func parseSequence(seqstr string) ([]string, error) {
	up := strings.ToUpper(seqstr)
	if strings.Contains(up, "-") {
		codes := strings.Split(up, "-")
		seq := make([]string, 0, len(codes))
		for _, code := range codes {
			if !IsStandardResidue(code) {
				return nil, NewInputError(fmt.Sprintf("Invalid 3-letter amino acid code: %s", code))
			}
			seq = append(seq, code)
		}
		return seq, nil
	}
	seq := make([]string, 0, len(up))
	for i := 0; i < len(up); i++ {
		three, ok := oneToThree[up[i]]
		if !ok {
			return nil, NewInputError(fmt.Sprintf("Invalid 1-letter amino acid code: %c", up[i]))
		}
		seq = append(seq, three)
	}
	return seq, nil
}

//samplePlausible draws residues with probability proportional to the
//natural-abundance weights, via a categorical distribution.
func samplePlausible(length int, src rand.Source) []string {
	weights := make([]float64, len(StandardAminoAcids))
	for i, aa := range StandardAminoAcids {
		weights[i] = AminoAcidFrequencies[aa]
	}
	cat := distuv.NewCategorical(weights, src)
	seq := make([]string, length)
	for i := range seq {
		seq[i] = StandardAminoAcids[int(cat.Rand())]
	}
	return seq
}
