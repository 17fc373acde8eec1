// SPDX-License-Identifier: MIT

// Package division holds the immutable standings of a sports division:
// every team's wins, losses and remaining games, plus the symmetric matrix
// of games still to be played between each pair of teams.
//
// A Division is validated once at construction (New, Parse or Load) and
// never mutated afterwards, so it is safe to share between goroutines.
//
// # Input format
//
//	4
//	Atlanta       83 71  8  0 1 6 1
//	Philadelphia  80 79  3  1 0 0 2
//	New_York      78 78  6  6 0 0 0
//	Montreal      77 82  3  1 2 0 0
//
// The first record is the team count n; each of the next n records carries a
// team name, its wins, losses and remaining games, and its row of the
// remaining-games matrix. A name containing spaces may be double-quoted
// ("New York"). Blank lines are ignored, and so are comment lines: a '#'
// followed by a space, a tab or nothing. A name may itself start with '#'
// ("#1 10 0 0 0 0" is a record).
//
// Every record sits on exactly one line; a team's fields may not wrap onto
// the next line, and two records may not share one. Lines are limited to
// 4 MiB.
//
// # Errors
//
//	ErrMalformedDivision - any structural problem (shape, negatives, asymmetry,
//	                       duplicate names, bad numbers); wrapped with detail.
//	ErrUnknownTeam       - a lookup by a name that is not in the division;
//	                       returned as *UnknownTeamError carrying suggestions.
package division
