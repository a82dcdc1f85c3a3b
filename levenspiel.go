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

// Package levenspiel sizes series trains of continuous stirred-tank and
// plug-flow reactors using the Levenspiel plot method, where the area under
// the feed-normalized inverse-rate curve over each reactor's conversion
// interval gives the reactor volume.
package levenspiel

import (
	"fmt"
	"strings"
)

// Version gives the version number of this version of Levenspiel.
const Version = "0.3.1"

// ReactorType selects the sizing rule for one reactor slot in a train.
type ReactorType int

const (
	// CSTR is a continuous stirred-tank reactor. Its contents are
	// well-mixed at the exit conversion, so it is sized from the inverse
	// rate at that single point.
	CSTR ReactorType = iota

	// PFR is a plug-flow reactor, sized by integrating the inverse rate
	// over its conversion interval.
	PFR
)

func (t ReactorType) String() string {
	switch t {
	case CSTR:
		return "CSTR"
	case PFR:
		return "PFR"
	default:
		return fmt.Sprintf("ReactorType(%d)", int(t))
	}
}

// ParseReactorType converts a configuration string such as "CSTR" or "pfr"
// to the corresponding ReactorType. Matching ignores case and surrounding
// white space.
func ParseReactorType(s string) (ReactorType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CSTR":
		return CSTR, nil
	case "PFR":
		return PFR, nil
	default:
		return -1, fmt.Errorf("levenspiel: invalid reactor type %s; valid options are CSTR and PFR", s)
	}
}
