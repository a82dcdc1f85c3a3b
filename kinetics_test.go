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
	"errors"
	"reflect"
	"strings"
	"testing"
)

// TestInverseRateForms checks the built-in kinetic forms against values
// worked out by hand at X=0.5, k=2, cA0=3.
func TestInverseRateForms(t *testing.T) {
	const tolerance = 1.e-12
	const X, k, cA0 = 0.5, 2.0, 3.0
	tests := []struct {
		name string
		want float64
	}{
		{name: FirstOrder, want: 1. / 3.},             // 1/(2·3·0.5)
		{name: SecondOrder, want: 1. / 4.5},           // 1/(2·9·0.25)
		{name: LangmuirHinshelwood, want: 16.81 / 3.}, // (0.5+3.6)²/(2·3·0.5)
	}
	kin := NewKinetics()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fn, err := kin.InverseRate(test.name)
			if err != nil {
				t.Fatal(err)
			}
			if have := fn(X, k, cA0); different(have, test.want, tolerance) {
				t.Errorf("%s(%g, %g, %g): want %g but have %g",
					test.name, X, k, cA0, test.want, have)
			}
		})
	}
}

func TestUnknownRateLaw(t *testing.T) {
	_, err := NewKinetics().InverseRate("zeroth-order")
	if err == nil {
		t.Fatal("looking up an unregistered rate law should fail")
	}
	var unknownErr UnknownRateLawError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("want UnknownRateLawError but have %T", err)
	}
	for _, want := range []string{"zeroth-order", FirstOrder, SecondOrder, LangmuirHinshelwood} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err.Error(), want)
		}
	}
}

func TestKineticsNames(t *testing.T) {
	want := []string{FirstOrder, LangmuirHinshelwood, SecondOrder}
	if have := NewKinetics().Names(); !reflect.DeepEqual(have, want) {
		t.Errorf("want %v but have %v", want, have)
	}
}

// TestRegisterRateLaw adds a law to one registry and checks that it can be
// resolved there but does not leak into freshly created registries.
func TestRegisterRateLaw(t *testing.T) {
	kin := NewKinetics()
	kin["zeroth-order"] = func(X, k, cA0 float64) float64 { return 1 / k }

	if _, err := kin.InverseRate("zeroth-order"); err != nil {
		t.Errorf("registered law should resolve: %v", err)
	}
	if _, err := NewKinetics().InverseRate("zeroth-order"); err == nil {
		t.Error("registration should not alter the built-in registry")
	}
}
