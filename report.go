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
	"io"
	"text/tabwriter"
)

// Report writes the sizing results in r to w as an aligned table, one row
// per reactor plus a total row, with volumes rounded to three significant
// figures.
func Report(w io.Writer, r *Result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, '\t', 0)
	fmt.Fprintln(tw, "reactor\ttype\tvolume [L]")
	for _, seg := range r.Segments {
		fmt.Fprintf(tw, "%d\t%s\t%.3g\n", seg.Reactor, seg.Type, seg.Volume)
	}
	fmt.Fprintf(tw, "total\t\t%.3g\n", r.Total)
	return tw.Flush()
}
