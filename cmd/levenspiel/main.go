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

// Command levenspiel is a command-line interface for sizing trains of
// series reactors from Levenspiel plots.
package main

import (
	"fmt"
	"os"

	"github.com/reactormodel/levenspiel/levenspielutil"
)

func main() {
	var commands int
	for _, arg := range os.Args { // Count the number of supplied commands.
		if arg[0] != '-' {
			commands++
		}
	}
	if commands == 1 { // With no command, serve the interactive diagram.
		if err := levenspielutil.StartWebServer(); err != nil {
			fmt.Println(err)
			os.Exit(-1)
		}
		return
	}

	// If a command was supplied, run in CLI mode.
	if err := levenspielutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
