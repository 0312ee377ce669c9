/*
 * pdb.go, part of synthpdb.
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
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/rmera/synthpdb/v3"
)

//PDBString serializes a molecule as PDB-format text: a HEADER and TITLE
//line, one fixed-column ATOM record per atom in strict order, a TER
//record, and a final END line. No blank lines are emitted anywhere.
//An empty molecule yields an empty string.
func PDBString(mol *Molecule) string {
	if mol == nil || mol.Len() == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "HEADER    SYNTHETIC LINEAR PEPTIDE\n")
	fmt.Fprintf(&b, "TITLE     %d RESIDUES GENERATED BY SYNTHPDB\n", mol.NResidues())
	for i, at := range mol.Atoms {
		x := mol.Coords.At(i, 0)
		y := mol.Coords.At(i, 1)
		z := mol.Coords.At(i, 2)
		b.WriteString(atomLine(at, x, y, z))
		b.WriteByte('\n')
	}
	last := mol.Atoms[mol.Len()-1]
	fmt.Fprintf(&b, "TER   %5d      %-3s %c%4d\n", last.Id+1, last.Molname, last.Chain, last.Molid)
	b.WriteString("END\n")
	return b.String()
}

//atomLine formats one ATOM record with 1-indexed columns per the PDB
//convention: tag 1-6, serial 7-11, name 13-16, altLoc 17, resName
//18-20, chain 22, resSeq 23-26, iCode 27, x/y/z 31-54, occupancy 55-60,
//b-factor 61-66, element 77-78, charge 79-80.
func atomLine(at *Atom, x, y, z float64) string {
	return fmt.Sprintf("ATOM  %5d %s %-3s %c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s%-2s",
		at.Id, padAtomName(at.Name), at.Molname, at.Chain, at.Molid,
		x, y, z, at.Occupancy, at.Bfactor, at.Symbol, at.Charge)
}

//padAtomName pads an atom name to the 4-column PDB field. Names of up
//to 3 characters start at column 14, leaving column 13 blank.
func padAtomName(name string) string {
	if len(name) < 4 {
		return fmt.Sprintf(" %-3s", name)
	}
	return name[:4]
}

//PDBParse reads PDB-format text back into a Molecule. Only ATOM and
//HETATM records are considered. Lines that fail to parse are logged and
//skipped rather than aborting, so partial or foreign input degrades
//gracefully. The returned error is only non-nil when the assembled
//atoms and coordinates are inconsistent, which would be a bug here.
func PDBParse(text string) (*Molecule, error) {
	atoms := make([]*Atom, 0, 32)
	data := make([]float64, 0, 96)
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		at, coords, err := parseAtomLine(line)
		if err != nil {
			log.Printf("synthpdb: Warning: skipping unparseable PDB line %q: %v", line, err)
			continue
		}
		atoms = append(atoms, at)
		data = append(data, coords[0], coords[1], coords[2])
	}
	if len(atoms) == 0 {
		return &Molecule{Atoms: atoms}, nil
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		return nil, errDecorate(err, "PDBParse")
	}
	return NewMolecule(atoms, coords)
}

//parseAtomLine parses one ATOM/HETATM record. Errors are accumulated
//over the fields and checked at the end of the line.
func parseAtomLine(line string) (*Atom, [3]float64, error) {
	var coords [3]float64
	if len(line) < 54 {
		return nil, coords, NewError("line too short for an ATOM record")
	}
	err := make([]error, 5)
	atom := new(Atom)
	atom.Id, err[0] = strconv.Atoi(strings.TrimSpace(line[6:11]))
	atom.Name = strings.TrimSpace(line[12:16])
	atom.Molname = strings.TrimSpace(line[17:20])
	atom.Molname1 = threeToOne[atom.Molname]
	atom.Chain = line[21]
	atom.Molid, err[1] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	coords[0], err[2] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	coords[1], err[3] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	coords[2], err[4] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	//occupancy, b-factor, element and charge are optional; missing or
	//broken values don't invalidate the record
	if len(line) >= 60 {
		atom.Occupancy, _ = strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64)
	}
	if len(line) >= 66 {
		atom.Bfactor, _ = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	}
	if len(line) >= 78 {
		atom.Symbol = strings.TrimSpace(line[76:78])
	}
	if len(line) >= 80 {
		atom.Charge = strings.TrimSpace(line[78:80])
	}
	if atom.Symbol == "" {
		atom.Symbol = symbolFromName(atom.Name)
	}
	for i := range err {
		if err[i] != nil {
			return nil, coords, err[i]
		}
	}
	return atom, coords, nil
}

//symbolFromName guesses the element from a PDB atom name. Good enough
//for the protein atoms this package generates.
func symbolFromName(name string) string {
	if name == "" {
		return ""
	}
	return name[:1]
}

//WritePDBFile writes PDB text to the named file. When the name ends in
//".zst" the text is compressed with zstd on the way out, the same
//framing the compressed-trajectory formats use.
func WritePDBFile(name, text string) error {
	f, err := os.Create(name)
	if err != nil {
		return errDecorate(err, "WritePDBFile")
	}
	defer f.Close()
	if strings.HasSuffix(name, ".zst") {
		z, err := zstd.NewWriter(f)
		if err != nil {
			return errDecorate(err, "WritePDBFile")
		}
		if _, err := z.Write([]byte(text)); err != nil {
			z.Close()
			return errDecorate(err, "WritePDBFile")
		}
		return z.Close()
	}
	_, err = f.WriteString(text)
	return err
}

//ReadPDBFile reads a PDB file, transparently decompressing ".zst"
//files, and parses it into a Molecule.
func ReadPDBFile(name string) (*Molecule, error) {
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, errDecorate(err, "ReadPDBFile")
	}
	if strings.HasSuffix(name, ".zst") {
		z, err := zstd.NewReader(nil)
		if err != nil {
			return nil, errDecorate(err, "ReadPDBFile")
		}
		defer z.Close()
		raw, err = z.DecodeAll(raw, nil)
		if err != nil {
			return nil, errDecorate(err, "ReadPDBFile")
		}
	}
	return PDBParse(string(raw))
}
