// SPDX-License-Identifier: MIT

package division

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Sentinel errors for division construction and lookups.
// Callers branch with errors.Is; the concrete errors carry detail.
var (
	// ErrMalformedDivision signals a structural problem in the
	// standings or the remaining-games matrix.
	ErrMalformedDivision = errors.New("division: malformed division")

	// ErrUnknownTeam signals a lookup by a name that is not in the division.
	ErrUnknownTeam = errors.New("division: unknown team")
)

// maxSuggestions bounds UnknownTeamError.Suggestions.
const maxSuggestions = 3

// UnknownTeamError is returned for names absent from a division.
// It matches ErrUnknownTeam via errors.Is.
type UnknownTeamError struct {
	Name        string
	Suggestions []string // closest known names, best first; may be empty
}

func (e *UnknownTeamError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("division: unknown team %q", e.Name)
	}

	return fmt.Sprintf("division: unknown team %q (did you mean %s?)", e.Name, strings.Join(e.Suggestions, ", "))
}

// Unwrap exposes ErrUnknownTeam to errors.Is.
func (e *UnknownTeamError) Unwrap() error { return ErrUnknownTeam }

// unknownTeam builds an UnknownTeamError with fuzzy-ranked suggestions
// drawn from known (case-insensitive subsequence match, closest first).
func unknownTeam(name string, known []string) *UnknownTeamError {
	err := &UnknownTeamError{Name: name}
	if strings.TrimSpace(name) == "" {
		return err
	}

	ranks := fuzzy.RankFindFold(name, known)
	sort.Stable(ranks)
	for _, r := range ranks {
		if len(err.Suggestions) == maxSuggestions {
			break
		}
		err.Suggestions = append(err.Suggestions, r.Target)
	}

	return err
}

// malformedf wraps ErrMalformedDivision with a formatted reason.
func malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedDivision, fmt.Sprintf(format, args...))
}
