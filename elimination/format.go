// SPDX-License-Identifier: MIT

package elimination

import (
	"bufio"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// WriteText renders one line per team in division order:
//
//	Atlanta is not eliminated
//	Philadelphia is eliminated by the subset R = { Atlanta New_York }
func WriteText(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)
	for _, v := range r.verdicts {
		bw.WriteString(v.Team)
		if v.Eliminated {
			bw.WriteString(" is eliminated by the subset R = { ")
			bw.WriteString(strings.Join(v.Certificate, " "))
			bw.WriteString(" }\n")
		} else {
			bw.WriteString(" is not eliminated\n")
		}
	}

	return bw.Flush()
}

// WriteJSON renders the report's standings as an indented JSON document
// of the form {"teams": [...]}.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(struct {
		Teams []Standing `json:"teams"`
	}{Teams: r.Standings()})
}
