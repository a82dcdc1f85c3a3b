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
	"strings"
)

// UnknownRateLawError is returned when a rate-law identifier has no entry
// in the kinetics registry being queried.
type UnknownRateLawError struct {
	name  string
	valid []string
}

func (e UnknownRateLawError) Error() string {
	return fmt.Sprintf("levenspiel: unknown rate law %s; valid options are %s",
		e.name, strings.Join(e.valid, ", "))
}

// InvalidParameterError is returned when a kinetic parameter (the rate
// constant or the feed concentration) is zero, negative, or not finite.
type InvalidParameterError struct {
	name  string
	value float64
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("levenspiel: invalid %s %g; must be positive and finite",
		e.name, e.value)
}

// InvalidCheckpointsError is returned when the conversion checkpoints of a
// train are not strictly increasing within the open interval (0, 1).
type InvalidCheckpointsError struct {
	checkpoints [3]float64
}

func (e InvalidCheckpointsError) Error() string {
	return fmt.Sprintf("levenspiel: invalid conversion checkpoints %v; "+
		"must be strictly increasing within (0, 1)", e.checkpoints)
}

// IntegrationError is returned when the adaptive quadrature cannot meet its
// error tolerance within its panel budget, or when the integrand evaluates
// to a non-finite value.
type IntegrationError struct {
	lo, hi   float64
	estimate float64
}

func (e IntegrationError) Error() string {
	return fmt.Sprintf("levenspiel: quadrature failed to converge over [%g, %g] "+
		"(error estimate %g)", e.lo, e.hi, e.estimate)
}
