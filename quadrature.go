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
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Quadrature tolerances and budget. Each panel is evaluated with paired
// 7- and 15-point Gauss-Legendre rules; the difference between the two
// estimates stands in for the error of the coarse rule, as in Gauss-Kronrod
// quadrature.
const (
	quadRelTol    = 1e-10
	quadAbsTol    = 1e-12
	quadMaxSplits = 1 << 10
	quadMinWidth  = 1e-14

	gaussCoarse = 7
	gaussFine   = 15
)

// integrate computes ∫f dX over [lo, hi] by adaptive bisection of
// fixed-order Gauss-Legendre panels: panels whose paired estimates disagree
// beyond tolerance are split in half and requeued. It returns an
// IntegrationError if f evaluates to a non-finite value or if the tolerance
// cannot be met within the split budget.
func integrate(f func(x float64) float64, lo, hi float64) (float64, error) {
	type panel struct {
		lo, hi float64
	}
	pending := []panel{{lo: lo, hi: hi}}

	var total float64
	var splits int
	for len(pending) > 0 {
		p := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		coarse := quad.Fixed(f, p.lo, p.hi, gaussCoarse, quad.Legendre{}, 0)
		fine := quad.Fixed(f, p.lo, p.hi, gaussFine, quad.Legendre{}, 0)
		if math.IsNaN(fine) || math.IsInf(fine, 0) || math.IsNaN(coarse) || math.IsInf(coarse, 0) {
			return 0, IntegrationError{lo: p.lo, hi: p.hi, estimate: math.Inf(1)}
		}
		estimate := math.Abs(fine - coarse)
		if estimate <= quadAbsTol+quadRelTol*math.Abs(fine) {
			total += fine
			continue
		}
		splits++
		if splits > quadMaxSplits || p.hi-p.lo < quadMinWidth {
			return 0, IntegrationError{lo: p.lo, hi: p.hi, estimate: estimate}
		}
		mid := 0.5 * (p.lo + p.hi)
		pending = append(pending, panel{lo: p.lo, hi: mid}, panel{lo: mid, hi: p.hi})
	}
	return total, nil
}
