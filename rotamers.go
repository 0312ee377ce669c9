/*
 * rotamers.go, part of synthpdb.
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
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

//Rotamer is one discrete side-chain conformation: a tuple of chi angle
//values, in degrees, plus a relative frequency weight. Weights within a
//residue's list need not sum to 1.
type Rotamer struct {
	Chis   []float64
	Weight float64
}

//RotamerLibrary maps each chi-bearing residue type to a non-empty,
//ordered list of rotamers. The values are a simplified backbone-
//independent library: the main staggered combinations per residue with
//rough population weights. The chi values deliberately avoid 0 and 180
//degrees so that rotamer-built side chains are distinguishable from the
//all-trans baseline.
var RotamerLibrary = map[string][]Rotamer{
	"VAL": {{[]float64{175.0}, 0.73}, {[]float64{-64.0}, 0.20}, {[]float64{63.0}, 0.07}},
	"LEU": {{[]float64{-65.0, 175.0}, 0.59}, {[]float64{-172.0, 62.0}, 0.29}, {[]float64{-85.0, 66.0}, 0.12}},
	"ILE": {{[]float64{-61.0, 169.0}, 0.60}, {[]float64{-59.0, -64.0}, 0.15}, {[]float64{62.0, 171.0}, 0.25}},
	"PRO": {{[]float64{27.0, -35.0}, 0.50}, {[]float64{-27.0, 36.0}, 0.50}},
	"PHE": {{[]float64{-66.0, 94.0}, 0.50}, {[]float64{-177.0, 79.0}, 0.33}, {[]float64{63.0, 91.0}, 0.17}},
	"TYR": {{[]float64{-66.0, 94.0}, 0.50}, {[]float64{-177.0, 78.0}, 0.34}, {[]float64{63.0, 89.0}, 0.16}},
	"TRP": {{[]float64{-66.0, 99.0}, 0.42}, {[]float64{-178.0, -105.0}, 0.32}, {[]float64{62.0, -88.0}, 0.26}},
	"SER": {{[]float64{64.0}, 0.48}, {[]float64{-66.0}, 0.29}, {[]float64{178.0}, 0.23}},
	"THR": {{[]float64{62.0}, 0.49}, {[]float64{-61.0}, 0.43}, {[]float64{-175.0}, 0.08}},
	"CYS": {{[]float64{-65.0}, 0.55}, {[]float64{-179.0}, 0.26}, {[]float64{63.0}, 0.19}},
	"MET": {{[]float64{-65.0, 176.0, 72.0}, 0.38}, {[]float64{-67.0, -168.0, -72.0}, 0.32}, {[]float64{-177.0, 179.0, 75.0}, 0.30}},
	"ASP": {{[]float64{-70.0, -15.0}, 0.51}, {[]float64{-177.0, 8.0}, 0.31}, {[]float64{63.0, 2.0}, 0.18}},
	"ASN": {{[]float64{-68.0, -36.0}, 0.49}, {[]float64{-177.0, 31.0}, 0.30}, {[]float64{64.0, 10.0}, 0.21}},
	"GLU": {{[]float64{-67.0, 178.0, -11.0}, 0.45}, {[]float64{-177.0, 175.0, 4.0}, 0.31}, {[]float64{-65.0, -68.0, -32.0}, 0.24}},
	"GLN": {{[]float64{-67.0, 178.0, -24.0}, 0.44}, {[]float64{-174.0, 177.0, 12.0}, 0.32}, {[]float64{-64.0, -66.0, -40.0}, 0.24}},
	"LYS": {{[]float64{-67.0, 179.0, 178.0, 179.0}, 0.40}, {[]float64{-172.0, 176.0, 179.0, -179.0}, 0.33}, {[]float64{-65.0, -68.0, 178.0, 179.0}, 0.27}},
	"ARG": {{[]float64{-67.0, 176.0, 176.0, 85.0}, 0.38}, {[]float64{-174.0, 178.0, -178.0, -85.0}, 0.33}, {[]float64{-65.0, -68.0, 179.0, 86.0}, 0.29}},
	"HIS": {{[]float64{-63.0, -74.0}, 0.45}, {[]float64{-175.0, -88.0}, 0.32}, {[]float64{62.0, 81.0}, 0.23}},
}

//SampleRotamer draws one rotamer for resname with probability
//proportional to its weight, using src. It returns nil when the residue
//has no rotamers (ALA, GLY).
func SampleRotamer(resname string, src rand.Source) *Rotamer {
	rots, ok := RotamerLibrary[resname]
	if !ok || len(rots) == 0 {
		return nil
	}
	weights := make([]float64, len(rots))
	for i, r := range rots {
		weights[i] = r.Weight
	}
	cat := distuv.NewCategorical(weights, src)
	return &rots[int(cat.Rand())]
}
