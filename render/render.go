/*
Copyright © 2026 the Levenspiel authors.
This file is part of Levenspiel.

Levenspiel is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Levenspiel is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Levenspiel.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package render draws Levenspiel diagrams: the inverse-rate curve of a
// sized reactor train with one shaded area patch per reactor.
package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/ctessum/geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/reactormodel/levenspiel"
)

// segmentColors fills the area patches of the first, second, and third
// reactor: yellow, cyan, and red at half opacity.
var segmentColors = [3]color.NRGBA{
	{R: 255, G: 255, B: 0, A: 127},
	{R: 0, G: 255, B: 255, A: 127},
	{R: 255, G: 0, B: 0, A: 127},
}

var curveColor = color.NRGBA{R: 31, G: 119, B: 180, A: 255}

// Options configures a rendered diagram. The zero value of each field
// selects its default.
type Options struct {
	// Width and Height give the canvas size. They default to 6 and 4.5
	// inches.
	Width, Height vg.Length

	// YMax caps the inverse-rate axis, which would otherwise follow the
	// curve toward its singularity at complete conversion. It defaults
	// to 20 L.
	YMax float64
}

func (o *Options) defaulted() Options {
	d := Options{Width: 6 * vg.Inch, Height: 4.5 * vg.Inch, YMax: 20}
	if o == nil {
		return d
	}
	if o.Width > 0 {
		d.Width = o.Width
	}
	if o.Height > 0 {
		d.Height = o.Height
	}
	if o.YMax > 0 {
		d.YMax = o.YMax
	}
	return d
}

// Plot assembles the Levenspiel diagram for res: the area patch of each
// reactor, legend entries giving the volumes, and the inverse-rate curve
// on top.
func Plot(res *levenspiel.Result, o *Options) (*plot.Plot, error) {
	opts := o.defaulted()

	p := plot.New()
	p.X.Label.Text = "conversion X_A"
	p.Y.Label.Text = "F_A0 / -r_A [L]"
	p.Legend.Top = true
	p.Legend.Left = true

	for i, seg := range res.Segments {
		if len(seg.Patch) == 0 {
			continue
		}
		poly, err := plotter.NewPolygon(pathXYs(seg.Patch[0]))
		if err != nil {
			return nil, fmt.Errorf("render: reactor %d patch: %v", seg.Reactor, err)
		}
		poly.Color = segmentColors[i]
		poly.LineStyle.Color = segmentColors[i]
		p.Add(poly)
		p.Legend.Add(fmt.Sprintf("reactor %d (%s): %.3g L", seg.Reactor, seg.Type, seg.Volume), poly)
	}

	line, err := plotter.NewLine(pathXYs(res.Curve))
	if err != nil {
		return nil, fmt.Errorf("render: inverse-rate curve: %v", err)
	}
	line.LineStyle.Color = curveColor
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add(res.RateLaw, line)

	// Adding a plotter expands the axes to its data range, so the limits
	// are clamped only after the last Add; otherwise the curve would drag
	// the inverse-rate axis toward its singularity.
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, opts.YMax

	return p, nil
}

// WritePNG renders the Levenspiel diagram for res to w as a PNG image.
func WritePNG(w io.Writer, res *levenspiel.Result, o *Options) error {
	opts := o.defaulted()
	p, err := Plot(res, &opts)
	if err != nil {
		return err
	}
	c := vgimg.New(opts.Width, opts.Height)
	p.Draw(draw.New(c))
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("render: writing png: %v", err)
	}
	return nil
}

func pathXYs(points []geom.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, point := range points {
		xys[i].X = point.X
		xys[i].Y = point.Y
	}
	return xys
}
