/*
 * main_test.go, part of synthpdb.
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

package main

import (
	"strings"
	"testing"
)

func TestDefaultName(Te *testing.T) {
	//hyphens drop out and the tag stops at 10 characters
	name := defaultName("ala-cys-asp-glu-phe", 5)
	if !strings.HasPrefix(name, "custom_peptide_ALACYSASPG_") {
		Te.Errorf("wrong custom prefix in %q", name)
	}
	if !strings.HasSuffix(name, ".pdb") {
		Te.Errorf("missing .pdb suffix in %q", name)
	}
	name = defaultName("ACDE", 4)
	if !strings.HasPrefix(name, "custom_peptide_ACDE_") {
		Te.Errorf("short tags should pass through whole, got %q", name)
	}
	name = defaultName("", 12)
	if !strings.HasPrefix(name, "random_linear_peptide_12_") {
		Te.Errorf("wrong random prefix in %q", name)
	}
}
