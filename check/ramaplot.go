/*
 * ramaplot.go, part of synthpdb.
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

package check

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	synth "github.com/rmera/synthpdb"
)

//RamaPlot writes a PNG Ramachandran plot of the molecule's phi/psi
//dihedrals to plotname.png. Points shade from red (N terminus) to blue
//(C terminus). Axes are fixed at -180/180 so plots of different
//structures are directly comparable.
func RamaPlot(mol *synth.Molecule, plotname, title string) error {
	if mol == nil {
		panic(synth.ErrNilCoords)
	}
	phis, psis := RamaAngles(mol)
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Phi"
	p.Y.Label.Text = "Psi"
	p.X.Min = -180
	p.X.Max = 180
	p.Y.Min = -180
	p.Y.Max = 180
	p.Add(plotter.NewGrid())
	temp := make(plotter.XYs, 1)
	for i := range phis {
		temp[0].X = phis[i]
		temp[0].Y = psis[i]
		s, err := plotter.NewScatter(temp)
		if err != nil {
			return err
		}
		var b uint8
		if len(phis) > 1 {
			b = uint8(i * 255 / (len(phis) - 1))
		}
		s.GlyphStyle.Color = color.RGBA{R: 255 - b, B: b, A: 255}
		p.Add(s)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(4*vg.Inch, 4*vg.Inch, filename)
}
