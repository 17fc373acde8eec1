// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/katalvlaran/pennant/division"
)

// SaveDivision stores d under name, replacing any previous division of the
// same name along with its verdicts.
//
// Steps (one transaction):
//  1. Upsert the divisions row.
//  2. Delete old teams, games and verdicts.
//  3. Insert teams in division order and the non-zero upper triangle of
//     the games matrix.
func (s *Store) SaveDivision(ctx context.Context, name string, d *division.Division) error {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		// 1) Upsert
		if err := s.exec(ctx, tx,
			`INSERT INTO divisions (name, team_count) VALUES (?, ?)
			 ON CONFLICT (name) DO UPDATE SET team_count = excluded.team_count`,
			name, d.TeamCount()); err != nil {
			return err
		}

		// 2) Clear
		for _, table := range []string{"teams", "remaining_games", "verdicts"} {
			if err := s.exec(ctx, tx, `DELETE FROM `+table+` WHERE division = ?`, name); err != nil {
				return err
			}
		}

		// 3) Insert
		for i, t := range d.Teams() {
			if err := s.exec(ctx, tx,
				`INSERT INTO teams (division, position, name, wins, losses, remaining) VALUES (?, ?, ?, ?, ?, ?)`,
				name, i, t.Name, t.Wins, t.Losses, t.Remaining); err != nil {
				return err
			}
		}
		for i := 0; i < d.TeamCount(); i++ {
			for j := i + 1; j < d.TeamCount(); j++ {
				g := d.GamesAt(i, j)
				if g == 0 {
					continue
				}
				if err := s.exec(ctx, tx,
					`INSERT INTO remaining_games (division, i, j, games) VALUES (?, ?, ?, ?)`,
					name, i, j, g); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return err
	}
	s.log.Debug("store: division saved", "division", name, "teams", d.TeamCount())

	return nil
}

// LoadDivision rebuilds the division saved under name. The result is
// validated by division.New exactly like parsed input.
func (s *Store) LoadDivision(ctx context.Context, name string) (*division.Division, error) {
	n, err := s.teamCount(ctx, name)
	if err != nil {
		return nil, err
	}

	teams := make([]division.Team, 0, n)
	rows, err := s.db.QueryContext(ctx, s.rebind(
		`SELECT name, wins, losses, remaining FROM teams WHERE division = ? ORDER BY position`), name)
	if err != nil {
		return nil, fmt.Errorf("store: load teams: %w", err)
	}
	for rows.Next() {
		var t division.Team
		if err = rows.Scan(&t.Name, &t.Wins, &t.Losses, &t.Remaining); err != nil {
			rows.Close()
			return nil, fmt.Errorf("store: scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err = closeRows(rows); err != nil {
		return nil, err
	}

	games := make([][]int, n)
	for i := range games {
		games[i] = make([]int, n)
	}
	rows, err = s.db.QueryContext(ctx, s.rebind(
		`SELECT i, j, games FROM remaining_games WHERE division = ?`), name)
	if err != nil {
		return nil, fmt.Errorf("store: load games: %w", err)
	}
	for rows.Next() {
		var i, j, g int
		if err = rows.Scan(&i, &j, &g); err != nil {
			rows.Close()
			return nil, fmt.Errorf("store: scan games: %w", err)
		}
		if i < 0 || j < 0 || i >= n || j >= n {
			rows.Close()
			return nil, fmt.Errorf("store: %w: games index (%d, %d) outside %d teams", division.ErrMalformedDivision, i, j, n)
		}
		games[i][j], games[j][i] = g, g
	}
	if err = closeRows(rows); err != nil {
		return nil, err
	}

	d, err := division.New(teams, games)
	if err != nil {
		return nil, fmt.Errorf("store: division %q: %w", name, err)
	}

	return d, nil
}

// Divisions lists saved division names in ascending order.
func (s *Store) Divisions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM divisions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: list divisions: %w", err)
	}
	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("store: scan division: %w", err)
		}
		names = append(names, name)
	}

	return names, closeRows(rows)
}

// DeleteDivision removes a division and everything saved under it.
func (s *Store) DeleteDivision(ctx context.Context, name string) error {
	if _, err := s.teamCount(ctx, name); err != nil {
		return err
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"verdicts", "remaining_games", "teams"} {
			if err := s.exec(ctx, tx, `DELETE FROM `+table+` WHERE division = ?`, name); err != nil {
				return err
			}
		}

		return s.exec(ctx, tx, `DELETE FROM divisions WHERE name = ?`, name)
	})
}

// teamCount returns the saved team count, or ErrDivisionNotFound.
func (s *Store) teamCount(ctx context.Context, name string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT team_count FROM divisions WHERE name = ?`), name).Scan(&n)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, fmt.Errorf("%w: %q", ErrDivisionNotFound, name)
	case err != nil:
		return 0, fmt.Errorf("store: division %q: %w", name, err)
	}

	return n, nil
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("store: rows: %w", err)
	}

	return rows.Close()
}
