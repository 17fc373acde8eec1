// SPDX-License-Identifier: MIT

package division

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-andiamo/splitter"
)

// maxRecordBytes caps one record line; a games row of a few thousand
// teams still fits.
const maxRecordBytes = 4 << 20

// fieldSplitter splits a record on spaces, keeping a double-quoted team
// name such as "New York" together as one token.
var fieldSplitter = mustSplitter(' ', splitter.DoubleQuotes)

func mustSplitter(sep rune, encs ...*splitter.Enclosure) splitter.Splitter {
	s, err := splitter.NewSplitter(sep, encs...)
	if err != nil {
		panic(fmt.Sprintf("division: splitter: %v", err))
	}

	return s
}

// Load opens path and parses it with Parse.
func Load(path string) (*Division, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("division: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Parse reads a division in the record format described in the package
// documentation and validates it with New.
//
// Steps:
//  1. Skip blank lines and comments ('#' followed by a space, a tab or the
//     end of the line); split each record into fields.
//  2. The first record must be a single positive integer n.
//  3. Each of the next n records needs 4+n fields: name, wins, losses,
//     remaining and the games row.
//  4. Trailing records after the n-th are an error.
//
// Every problem wraps ErrMalformedDivision and names the offending line.
func Parse(r io.Reader) (*Division, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxRecordBytes)
	line := 0
	n := -1
	var (
		teams []Team
		games [][]int
	)
	for sc.Scan() {
		line++
		fields, err := splitRecord(sc.Text())
		if err != nil {
			return nil, malformedf("line %d: %v", line, err)
		}
		if len(fields) == 0 {
			continue
		}

		// header
		if n < 0 {
			if len(fields) != 1 {
				return nil, malformedf("line %d: want team count, got %d fields", line, len(fields))
			}
			n, err = strconv.Atoi(fields[0])
			if err != nil || n <= 0 {
				return nil, malformedf("line %d: bad team count %q", line, fields[0])
			}
			teams = make([]Team, 0, n)
			games = make([][]int, 0, n)
			continue
		}

		if len(teams) == n {
			return nil, malformedf("line %d: more than %d team records", line, n)
		}
		if len(fields) != 4+n {
			return nil, malformedf("line %d: want %d fields, got %d", line, 4+n, len(fields))
		}
		nums, err := atois(fields[1:])
		if err != nil {
			return nil, malformedf("line %d: %v", line, err)
		}
		teams = append(teams, Team{Name: fields[0], Wins: nums[0], Losses: nums[1], Remaining: nums[2]})
		games = append(games, nums[3:])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("division: read: %w", err)
	}

	if n < 0 {
		return nil, malformedf("empty input")
	}
	if len(teams) != n {
		return nil, malformedf("want %d team records, got %d", n, len(teams))
	}

	return New(teams, games)
}

// splitRecord tokenizes one line. Comments and blank lines yield no fields.
func splitRecord(s string) ([]string, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\t", " "))
	if s == "" || isComment(s) {
		return nil, nil
	}
	parts, err := fieldSplitter.Split(s)
	if err != nil {
		return nil, err
	}

	fields := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
			p = p[1 : len(p)-1]
		}
		fields = append(fields, p)
	}

	return fields, nil
}

// isComment reports whether a trimmed line is a comment. A token that merely
// starts with '#', such as a team named #1, is not.
func isComment(s string) bool {
	return s == "#" || strings.HasPrefix(s, "# ")
}

func atois(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("field %d: %q is not an integer", i+2, f)
		}
		out[i] = v
	}

	return out, nil
}
