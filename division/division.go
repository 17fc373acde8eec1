// SPDX-License-Identifier: MIT
//
// File: division.go
// Role: Division construction and name-based / index-based lookups.
// Determinism:
//   - TeamNames and Teams preserve input order.
// Concurrency:
//   - Division is immutable after New; all methods are safe for concurrent use.

package division

import "math"

// Team is one row of the standings. Name is case-sensitive and unique
// within a division.
type Team struct {
	Name      string `json:"name"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
	Remaining int    `json:"remaining"`
}

// Division is an immutable set of teams and the games left between them.
type Division struct {
	teams []Team
	games Games
	index map[string]int
}

// New validates teams and games and builds a Division.
// games[i][j] is the number of games left between teams[i] and teams[j].
//
// Fails with ErrMalformedDivision when:
//   - teams is empty;
//   - a name is empty or appears twice;
//   - wins, losses or remaining is negative;
//   - wins + remaining does not fit in an int;
//   - games is not len(teams)×len(teams), has a negative entry,
//     a non-zero diagonal or an asymmetric pair, or more than MaxTotalGames
//     games in total.
//
// The inputs are copied; later changes to them do not affect the Division.
// Complexity: O(n²).
func New(teams []Team, games [][]int) (*Division, error) {
	if len(teams) == 0 {
		return nil, malformedf("no teams")
	}
	if len(games) != len(teams) {
		return nil, malformedf("%d teams but %d games rows", len(teams), len(games))
	}

	index := make(map[string]int, len(teams))
	for i, t := range teams {
		if t.Name == "" {
			return nil, malformedf("team %d has an empty name", i)
		}
		if prev, dup := index[t.Name]; dup {
			return nil, malformedf("duplicate team %q at %d and %d", t.Name, prev, i)
		}
		if t.Wins < 0 || t.Losses < 0 || t.Remaining < 0 {
			return nil, malformedf("team %q has negative stats (%d-%d-%d)", t.Name, t.Wins, t.Losses, t.Remaining)
		}
		if t.Wins > math.MaxInt-t.Remaining {
			return nil, malformedf("team %q: %d wins + %d remaining overflows", t.Name, t.Wins, t.Remaining)
		}
		index[t.Name] = i
	}

	g, err := NewGames(games)
	if err != nil {
		return nil, err
	}

	return &Division{
		teams: append([]Team(nil), teams...),
		games: g,
		index: index,
	}, nil
}

// TeamCount returns the number of teams.
func (d *Division) TeamCount() int { return len(d.teams) }

// TeamNames returns all team names in input order.
func (d *Division) TeamNames() []string {
	names := make([]string, len(d.teams))
	for i, t := range d.teams {
		names[i] = t.Name
	}

	return names
}

// Teams returns a copy of all teams in input order.
func (d *Division) Teams() []Team { return append([]Team(nil), d.teams...) }

// Games returns the remaining-games matrix.
func (d *Division) Games() Games { return d.games }

// Index returns the position of name, or an *UnknownTeamError.
func (d *Division) Index(name string) (int, error) {
	i, ok := d.index[name]
	if !ok {
		return -1, unknownTeam(name, d.TeamNames())
	}

	return i, nil
}

// Team returns the standings row of name.
func (d *Division) Team(name string) (Team, error) {
	i, err := d.Index(name)
	if err != nil {
		return Team{}, err
	}

	return d.teams[i], nil
}

// Wins returns the wins of name.
func (d *Division) Wins(name string) (int, error) {
	t, err := d.Team(name)

	return t.Wins, err
}

// Losses returns the losses of name.
func (d *Division) Losses(name string) (int, error) {
	t, err := d.Team(name)

	return t.Losses, err
}

// Remaining returns the games name has left to play.
func (d *Division) Remaining(name string) (int, error) {
	t, err := d.Team(name)

	return t.Remaining, err
}

// GamesBetween returns the games left between a and b.
// Fails with ErrUnknownTeam if either name is absent (a is checked first).
func (d *Division) GamesBetween(a, b string) (int, error) {
	i, err := d.Index(a)
	if err != nil {
		return 0, err
	}
	j, err := d.Index(b)
	if err != nil {
		return 0, err
	}

	return d.games.At(i, j), nil
}

// TeamAt returns the team at index i. Panics if i is out of range.
func (d *Division) TeamAt(i int) Team { return d.teams[i] }

// GamesAt returns the games left between the teams at indices i and j.
// Panics if either index is out of range.
func (d *Division) GamesAt(i, j int) int { return d.games.At(i, j) }
