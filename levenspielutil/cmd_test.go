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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/reactormodel/levenspiel"
)

func TestConfigDefaults(t *testing.T) {
	stringTests := []struct {
		name, want string
	}{
		{name: "RateLaw", want: levenspiel.LangmuirHinshelwood},
		{name: "Reactor1", want: "CSTR"},
		{name: "Reactor2", want: "CSTR"},
		{name: "Reactor3", want: "CSTR"},
		{name: "OutputFile", want: "levenspiel.png"},
		{name: "addr", want: "localhost:7171"},
	}
	for _, test := range stringTests {
		if have := Cfg.GetString(test.name); have != test.want {
			t.Errorf("%s: want %q but have %q", test.name, test.want, have)
		}
	}
	floatTests := []struct {
		name string
		want float64
	}{
		{name: "RateConstant", want: 0.5},
		{name: "FeedConcentration", want: 1},
		{name: "X1", want: 0.4},
		{name: "X2", want: 0.8},
		{name: "X3", want: 0.9},
	}
	for _, test := range floatTests {
		if have := Cfg.GetFloat64(test.name); have != test.want {
			t.Errorf("%s: want %g but have %g", test.name, test.want, have)
		}
	}
	if !Cfg.GetBool("open") {
		t.Error("open: want true but have false")
	}
}

func TestRun(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "levenspiel.png")
	cmd := &cobra.Command{}
	var b bytes.Buffer
	cmd.SetOut(&b)

	err := Run(cmd, levenspiel.FirstOrder, 0.5, 1, 0.4, 0.8, 0.9,
		"CSTR", "CSTR", "CSTR", outputFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"CSTR", "1.33", "total", "7.33"} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("report %q should contain %q", b.String(), want)
		}
	}
	img, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(img, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("diagram file does not begin with the PNG signature")
	}
}

// TestRunNoDiagram checks that an empty OutputFile skips the drawing.
func TestRunNoDiagram(t *testing.T) {
	cmd := &cobra.Command{}
	var b bytes.Buffer
	cmd.SetOut(&b)

	err := Run(cmd, levenspiel.SecondOrder, 0.5, 1, 0.4, 0.8, 0.9,
		"PFR", "PFR", "PFR", "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "total") {
		t.Errorf("report %q should contain the total", b.String())
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		rateLaw string
		k       float64
		x1      float64
		reactor string
	}{
		{name: "bad reactor type", rateLaw: levenspiel.FirstOrder, k: 0.5, x1: 0.4, reactor: "batch"},
		{name: "unknown rate law", rateLaw: "zeroth-order", k: 0.5, x1: 0.4, reactor: "CSTR"},
		{name: "bad rate constant", rateLaw: levenspiel.FirstOrder, k: -1, x1: 0.4, reactor: "CSTR"},
		{name: "bad checkpoints", rateLaw: levenspiel.FirstOrder, k: 0.5, x1: 0.95, reactor: "CSTR"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.SetOut(new(bytes.Buffer))
			err := Run(cmd, test.rateLaw, test.k, 1, test.x1, 0.8, 0.9,
				test.reactor, "CSTR", "CSTR", "")
			if err == nil {
				t.Fatal("Run should fail")
			}
		})
	}
}

func TestVersionCmd(t *testing.T) {
	var b bytes.Buffer
	versionCmd.SetOut(&b)
	versionCmd.Run(versionCmd, nil)
	want := "Levenspiel v" + levenspiel.Version
	if !strings.Contains(b.String(), want) {
		t.Errorf("want %q but have %q", want, b.String())
	}
}

func TestRateLawsCmd(t *testing.T) {
	var b bytes.Buffer
	rateLawsCmd.SetOut(&b)
	rateLawsCmd.Run(rateLawsCmd, nil)
	want := levenspiel.FirstOrder + "\n" +
		levenspiel.LangmuirHinshelwood + "\n" +
		levenspiel.SecondOrder + "\n"
	if b.String() != want {
		t.Errorf("want %q but have %q", want, b.String())
	}
}
