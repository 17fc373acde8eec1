// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/pennant/elimination"
)

// SaveVerdicts replaces the verdicts stored for the division name.
// The division must already be saved. Certificates are stored as JSON arrays.
func (s *Store) SaveVerdicts(ctx context.Context, name string, verdicts []elimination.Verdict) error {
	if _, err := s.teamCount(ctx, name); err != nil {
		return err
	}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if err := s.exec(ctx, tx, `DELETE FROM verdicts WHERE division = ?`, name); err != nil {
			return err
		}
		for i, v := range verdicts {
			cert, err := json.Marshal(v.Certificate)
			if err != nil {
				return fmt.Errorf("store: encode certificate of %q: %w", v.Team, err)
			}
			if err = s.exec(ctx, tx,
				`INSERT INTO verdicts (division, position, team, eliminated, trivial, certificate, max_flow, total_games)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				name, i, v.Team, v.Eliminated, v.Trivial, string(cert), v.MaxFlow, v.TotalGames); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}
	s.log.Debug("store: verdicts saved", "division", name, "verdicts", len(verdicts))

	return nil
}

// LoadVerdicts returns the verdicts saved for name in the order they were
// saved, or nil when the division exists but has no verdicts yet.
func (s *Store) LoadVerdicts(ctx context.Context, name string) ([]elimination.Verdict, error) {
	if _, err := s.teamCount(ctx, name); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(
		`SELECT team, eliminated, trivial, certificate, max_flow, total_games
		 FROM verdicts WHERE division = ? ORDER BY position`), name)
	if err != nil {
		return nil, fmt.Errorf("store: load verdicts: %w", err)
	}
	var out []elimination.Verdict
	for rows.Next() {
		var (
			v    elimination.Verdict
			cert string
		)
		if err = rows.Scan(&v.Team, &v.Eliminated, &v.Trivial, &cert, &v.MaxFlow, &v.TotalGames); err != nil {
			rows.Close()
			return nil, fmt.Errorf("store: scan verdict: %w", err)
		}
		if err = json.Unmarshal([]byte(cert), &v.Certificate); err != nil {
			rows.Close()
			return nil, fmt.Errorf("store: decode certificate of %q: %w", v.Team, err)
		}
		out = append(out, v)
	}

	return out, closeRows(rows)
}
