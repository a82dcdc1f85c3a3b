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

import "sort"

// An InverseRateFn is the kinetic form of a rate law. Given the conversion
// X of the limiting reactant, the rate constant k, and the feed
// concentration cA0 [mol L⁻¹], it returns the inverse reaction rate
// normalized by the feed molar flow, F_A0/−r_A [L]. Implementations must be
// pure functions, finite for X ∈ [0, 1); the built-in forms are singular at
// complete conversion.
type InverseRateFn func(X, k, cA0 float64) float64

// Identifiers for the built-in rate laws.
const (
	FirstOrder          = "first-order"
	SecondOrder         = "second-order"
	LangmuirHinshelwood = "langmuir-hinshelwood"
)

// builtinRateLaws holds the kinetic forms that every registry starts with.
var builtinRateLaws = map[string]InverseRateFn{
	// −r_A = k·cA0·(1−X)
	FirstOrder: func(X, k, cA0 float64) float64 {
		return 1 / (k * cA0 * (1 - X))
	},
	// −r_A = k·cA0²·(1−X)²
	SecondOrder: func(X, k, cA0 float64) float64 {
		return 1 / (k * cA0 * cA0 * (1 - X) * (1 - X))
	},
	// −r_A = k·cA0·(1−X) / (0.5 + 1.2·k·cA0·(1−X))², a surface-reaction
	// form where the denominator accounts for adsorption site saturation.
	LangmuirHinshelwood: func(X, k, cA0 float64) float64 {
		sat := 0.5 + 1.2*k*cA0*(1-X)
		return sat * sat / (k * cA0 * (1 - X))
	},
}

// Kinetics is a registry of rate laws keyed by identifier. Adding an entry
// makes a new rate law available to every train evaluated against the
// registry; nothing else needs to change.
type Kinetics map[string]InverseRateFn

// NewKinetics returns a registry holding the built-in rate laws. The
// returned map is owned by the caller, so entries may be added or replaced
// without affecting other registries.
func NewKinetics() Kinetics {
	kin := make(Kinetics, len(builtinRateLaws))
	for name, fn := range builtinRateLaws {
		kin[name] = fn
	}
	return kin
}

// InverseRate returns the inverse-rate function registered under name,
// or an UnknownRateLawError if there is none.
func (kin Kinetics) InverseRate(name string) (InverseRateFn, error) {
	fn, ok := kin[name]
	if !ok {
		return nil, UnknownRateLawError{name: name, valid: kin.Names()}
	}
	return fn, nil
}

// Names returns the registered rate-law identifiers in alphabetical order.
func (kin Kinetics) Names() []string {
	names := make([]string, 0, len(kin))
	for name := range kin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
