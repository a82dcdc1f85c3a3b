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

package levenspielutil

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reactormodel/levenspiel"
	"github.com/reactormodel/levenspiel/render"
)

// Run sizes the reactor train, writes the sizing report, and draws the
// Levenspiel diagram.
//
// cmd is the cobra.Command instance where Run is called from. The report
// is written to its output stream.
//
// rateLaw identifies the reaction kinetics. k is the rate constant and
// cA0 the feed concentration [mol/L].
//
// x1, x2, and x3 are the exit conversions of the three reactors; they must
// be strictly increasing within (0, 1).
//
// reactor1, reactor2, and reactor3 give the type of each reactor, either
// "CSTR" or "PFR".
//
// outputFile is the path the diagram is drawn to. If it is empty, the
// drawing is skipped.
func Run(cmd *cobra.Command, rateLaw string, k, cA0, x1, x2, x3 float64,
	reactor1, reactor2, reactor3, outputFile string) error {

	types, err := parseReactorTypes([3]string{reactor1, reactor2, reactor3})
	if err != nil {
		return err
	}
	train := &levenspiel.Train{
		RateLaw:     rateLaw,
		K:           k,
		CA0:         cA0,
		Checkpoints: [3]float64{x1, x2, x3},
		Types:       types,
	}
	result, err := train.Evaluate()
	if err != nil {
		return err
	}
	if err := levenspiel.Report(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if outputFile == "" {
		return nil
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("levenspiel: creating diagram file: %v", err)
	}
	if err := render.WritePNG(f, result, nil); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("levenspiel: closing diagram file: %v", err)
	}
	cmd.Printf("Diagram drawn to %s.\n", outputFile)
	return nil
}

func parseReactorTypes(names [3]string) ([3]levenspiel.ReactorType, error) {
	var types [3]levenspiel.ReactorType
	for i, name := range names {
		t, err := levenspiel.ParseReactorType(name)
		if err != nil {
			return types, err
		}
		types[i] = t
	}
	return types, nil
}
