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

package render

import (
	"bytes"
	"testing"

	"github.com/reactormodel/levenspiel"
)

func testResult(t *testing.T) *levenspiel.Result {
	t.Helper()
	tr := &levenspiel.Train{
		RateLaw:     levenspiel.LangmuirHinshelwood,
		K:           0.5,
		CA0:         1,
		Checkpoints: [3]float64{0.4, 0.8, 0.9},
		Types:       [3]levenspiel.ReactorType{levenspiel.CSTR, levenspiel.PFR, levenspiel.CSTR},
	}
	res, err := tr.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestPlot(t *testing.T) {
	p, err := Plot(testResult(t), nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Min != 0 || p.X.Max != 1 {
		t.Errorf("conversion axis should span [0, 1], not [%g, %g]", p.X.Min, p.X.Max)
	}
	if p.Y.Min != 0 || p.Y.Max != 20 {
		t.Errorf("inverse-rate axis should span [0, 20], not [%g, %g]", p.Y.Min, p.Y.Max)
	}
}

func TestPlotYMax(t *testing.T) {
	p, err := Plot(testResult(t), &Options{YMax: 35})
	if err != nil {
		t.Fatal(err)
	}
	if p.Y.Max != 35 {
		t.Errorf("want Y max 35 but have %g", p.Y.Max)
	}
}

func TestWritePNG(t *testing.T) {
	var b bytes.Buffer
	if err := WritePNG(&b, testResult(t), nil); err != nil {
		t.Fatal(err)
	}
	signature := []byte("\x89PNG\r\n\x1a\n")
	if !bytes.HasPrefix(b.Bytes(), signature) {
		t.Error("output does not begin with the PNG signature")
	}
	if b.Len() < 1000 {
		t.Errorf("image is implausibly small: %d bytes", b.Len())
	}
}
