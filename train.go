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

package levenspiel

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"
)

// Sampling resolution for the inverse-rate curve and for the curved edge of
// plug-flow patches. The curve stops short of X = 1, where the built-in
// rate laws are singular.
const (
	curveSamples = 100
	curveMax     = 0.99
	patchSamples = 100
)

// A Train specifies three reactors in series, all operating on the same
// reaction, to be sized against a common inverse-rate curve.
type Train struct {
	// RateLaw identifies the kinetics to size against. It must name an
	// entry in the rate-law registry.
	RateLaw string

	// K is the rate constant of the reaction and CA0 the concentration of
	// the limiting reactant in the feed [mol L⁻¹]. Both must be positive
	// and finite.
	K, CA0 float64

	// Checkpoints holds the exit conversion of each reactor. The values
	// must be strictly increasing within (0, 1); each reactor's entry
	// conversion is the previous reactor's exit conversion, starting from
	// zero.
	Checkpoints [3]float64

	// Types chooses CSTR or PFR sizing for each reactor slot.
	Types [3]ReactorType

	// Kinetics is the rate-law registry to resolve RateLaw in. If nil,
	// the built-in registry is used.
	Kinetics Kinetics
}

// A Segment is the sizing result for one reactor of a train.
type Segment struct {
	Reactor int // 1-based slot in the train
	Type    ReactorType

	// XIn and XOut are the entry and exit conversions of the reactor.
	XIn, XOut float64

	// Volume is the required reactor volume [L].
	Volume float64

	// Patch is the region under the inverse-rate curve whose area equals
	// Volume: a rectangle of height g(XOut) for a CSTR, and a
	// curve-bounded polygon for a PFR. It is closed counterclockwise from
	// (XIn, 0).
	Patch geom.Polygon
}

// A Result holds the volumes and the plot geometry from one train
// evaluation.
type Result struct {
	// RateLaw, K, and CA0 echo the evaluated train.
	RateLaw string
	K, CA0  float64

	// Curve samples the feed-normalized inverse rate F_A0/−r_A against
	// conversion, uniformly over [0, 0.99].
	Curve []geom.Point

	// Segments holds the per-reactor results in train order.
	Segments [3]Segment

	// Total is the summed volume of the train [L].
	Total float64
}

// A volumeRule computes the volume of one reactor spanning the conversion
// interval [xin, xout] under the inverse-rate curve g.
type volumeRule func(g func(x float64) float64, xin, xout float64) (float64, error)

var volumeRules = map[ReactorType]volumeRule{
	CSTR: cstrVolume,
	PFR:  pfrVolume,
}

// cstrVolume sizes a stirred tank. At steady state the whole reactor
// operates at its exit conversion, so V = (xout−xin)·g(xout) with no
// integration involved.
func cstrVolume(g func(x float64) float64, xin, xout float64) (float64, error) {
	v := (xout - xin) * g(xout)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("levenspiel: inverse rate is not finite at conversion %g", xout)
	}
	return v, nil
}

// pfrVolume sizes a plug-flow reactor: V = ∫g dX over [xin, xout].
func pfrVolume(g func(x float64) float64, xin, xout float64) (float64, error) {
	return integrate(g, xin, xout)
}

// Evaluate sizes each reactor of the train and assembles the geometry for
// plotting: the sampled inverse-rate curve and one area patch per reactor.
// The train is not modified, so a single Train may be evaluated from
// multiple goroutines concurrently.
//
// Evaluation fails fast: the first unknown rate law, invalid parameter,
// invalid checkpoint ordering, or non-convergent integration aborts the
// whole train.
func (tr *Train) Evaluate() (*Result, error) {
	kin := tr.Kinetics
	if kin == nil {
		kin = NewKinetics()
	}
	fn, err := kin.InverseRate(tr.RateLaw)
	if err != nil {
		return nil, err
	}
	if err := checkParameter("rate constant", tr.K); err != nil {
		return nil, err
	}
	if err := checkParameter("feed concentration", tr.CA0); err != nil {
		return nil, err
	}
	if err := checkCheckpoints(tr.Checkpoints); err != nil {
		return nil, err
	}

	g := func(x float64) float64 { return fn(x, tr.K, tr.CA0) }

	res := &Result{
		RateLaw: tr.RateLaw,
		K:       tr.K,
		CA0:     tr.CA0,
		Curve:   sampleCurve(g),
	}
	var xin float64
	for i, xout := range tr.Checkpoints {
		rule, ok := volumeRules[tr.Types[i]]
		if !ok {
			return nil, fmt.Errorf("levenspiel: reactor %d has unknown type %v", i+1, tr.Types[i])
		}
		v, err := rule(g, xin, xout)
		if err != nil {
			return nil, err
		}
		seg := Segment{
			Reactor: i + 1,
			Type:    tr.Types[i],
			XIn:     xin,
			XOut:    xout,
			Volume:  v,
		}
		switch tr.Types[i] {
		case CSTR:
			seg.Patch = rectanglePatch(xin, xout, g(xout))
		case PFR:
			seg.Patch = curvePatch(g, xin, xout)
		}
		res.Segments[i] = seg
		res.Total += v
		xin = xout
	}
	return res, nil
}

func checkParameter(name string, value float64) error {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return InvalidParameterError{name: name, value: value}
	}
	return nil
}

func checkCheckpoints(x [3]float64) error {
	lo := 0.0
	for _, xi := range x {
		if !(xi > lo && xi < 1) { // also rejects NaN
			return InvalidCheckpointsError{checkpoints: x}
		}
		lo = xi
	}
	return nil
}

// sampleCurve evaluates g at curveSamples evenly spaced conversions over
// [0, curveMax].
func sampleCurve(g func(x float64) float64) []geom.Point {
	xs := floats.Span(make([]float64, curveSamples), 0, curveMax)
	curve := make([]geom.Point, len(xs))
	for i, x := range xs {
		curve[i] = geom.Point{X: x, Y: g(x)}
	}
	return curve
}

// rectanglePatch returns the area rectangle of a stirred tank: base
// [xin, xout] on the conversion axis, rising to the inverse rate at the
// exit conversion.
func rectanglePatch(xin, xout, height float64) geom.Polygon {
	return geom.Polygon{geom.Path{
		geom.Point{X: xin, Y: 0},
		geom.Point{X: xout, Y: 0},
		geom.Point{X: xout, Y: height},
		geom.Point{X: xin, Y: height},
	}}
}

// curvePatch returns the area region of a plug-flow reactor: the region
// between the conversion axis and the inverse-rate curve over [xin, xout],
// with the curved edge sampled at patchSamples points.
func curvePatch(g func(x float64) float64, xin, xout float64) geom.Polygon {
	xs := floats.Span(make([]float64, patchSamples), xin, xout)
	path := make(geom.Path, 0, len(xs)+2)
	path = append(path, geom.Point{X: xin, Y: 0})
	for _, x := range xs {
		path = append(path, geom.Point{X: x, Y: g(x)})
	}
	path = append(path, geom.Point{X: xout, Y: 0})
	return geom.Polygon{path}
}
