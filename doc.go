/*
 * doc.go, part of synthpdb.
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

/*
Package synth generates synthetic linear peptide structures in PDB
format. Sequences can be given explicitly, drawn uniformly at random,
or drawn following natural amino-acid frequencies. Structures are built
either as CA-only traces or with the full backbone and heavy side-chain
atoms, placing each atom from internal coordinates (bond length, bond
angle, dihedral). Side-chain conformations can come from a small
backbone-independent rotamer library.

The check sub-package validates generated (or foreign) structures for
geometric and statistical plausibility, and the refine sub-package
wraps generation and validation into retry and best-of-N policies,
plus a simple steric-clash repair routine.

Distances are in Angstroms. Angles in the public API are in degrees
unless the function says otherwise.
*/
package synth
