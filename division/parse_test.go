// SPDX-License-Identifier: MIT

package division_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pennant/division"
)

func TestLoadTeams4(t *testing.T) {
	d, err := division.Load(filepath.Join("testdata", "teams4.txt"))
	require.NoError(t, err)

	teams, games := teams4()
	want, err := division.New(teams, games)
	require.NoError(t, err)
	require.Equal(t, want, d)
}

func TestLoadTeams5(t *testing.T) {
	d, err := division.Load(filepath.Join("testdata", "teams5.txt"))
	require.NoError(t, err)
	require.Equal(t, []string{"New_York", "Baltimore", "Boston", "Toronto", "Detroit"}, d.TeamNames())

	g, err := d.GamesBetween("Detroit", "Baltimore")
	require.NoError(t, err)
	require.Equal(t, 4, g)
}

func TestLoadQuotedNamesAndComments(t *testing.T) {
	d, err := division.Load(filepath.Join("testdata", "quoted.txt"))
	require.NoError(t, err)
	require.Equal(t, []string{"New York", "Boston", "Tampa Bay"}, d.TeamNames())

	w, err := d.Wins("Tampa Bay")
	require.NoError(t, err)
	require.Equal(t, 80, w)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := division.Load(filepath.Join("testdata", "does-not-exist.txt"))
	require.Error(t, err)
	require.NotErrorIs(t, err, division.ErrMalformedDivision)
}

func TestParseTabs(t *testing.T) {
	d, err := division.Parse(strings.NewReader("2\nA\t1\t2\t1\t0\t1\nB\t2\t1\t1\t1\t0\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, d.TeamNames())
}

func TestParseMalformed(t *testing.T) {
	cases := map[string]struct {
		input string
		line  string
	}{
		"empty":            {input: "", line: "empty input"},
		"only comments":    {input: "# nothing\n\n", line: "empty input"},
		"bad count":        {input: "two\n", line: "line 1"},
		"zero count":       {input: "0\n", line: "line 1"},
		"header fields":    {input: "2 3\n", line: "line 1"},
		"short record":     {input: "2\nA 1 2 1 0 1\nB 2 1 1\n", line: "line 3"},
		"non-integer stat": {input: "2\nA 1 x 1 0 1\nB 2 1 1 1 0\n", line: "line 2"},
		"missing record":   {input: "2\nA 1 2 1 0 1\n", line: "want 2 team records, got 1"},
		"extra record":     {input: "1\nA 1 2 0 0\nB 2 1 0 0\n", line: "line 3"},
		"asymmetric":       {input: "2\nA 1 2 1 0 1\nB 2 1 1 2 0\n", line: "games[0][1]"},
		"duplicate":        {input: "2\nA 1 2 1 0 1\nA 2 1 1 1 0\n", line: "duplicate team"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := division.Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, division.ErrMalformedDivision)
			require.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestParseHashNames(t *testing.T) {
	d, err := division.Parse(strings.NewReader("# standings\n#\n2\n#1 10 0 0 0 0\nB 5 0 0 0 0\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"#1", "B"}, d.TeamNames())

	w, err := d.Wins("#1")
	require.NoError(t, err)
	require.Equal(t, 10, w)
}

func TestParseLongRecord(t *testing.T) {
	pad := strings.Repeat(" ", 100_000)
	d, err := division.Parse(strings.NewReader("2\nA" + pad + "1 2 1 0 1\nB 2 1 1 1 0\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, d.TeamNames())
}

func TestParseTotalOverflow(t *testing.T) {
	_, err := division.Parse(strings.NewReader("2\nA 9223372036854775807 0 1 0 0\nB 0 0 0 0 0\n"))
	require.ErrorIs(t, err, division.ErrMalformedDivision)
}
