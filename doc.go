// SPDX-License-Identifier: MIT

// Package pennant answers one question about a sports division: which teams
// can no longer finish with the most wins, and which rivals prove it.
//
// What is in the box?
//
//	• division/    – immutable standings + remaining-games matrix, input parsing
//	• elimination/ – per-team max-flow reduction, certificates, Report
//	• flow/        – Ford–Fulkerson, Edmonds–Karp, Dinic over an index network
//	• store/       – SQLite / Postgres persistence of divisions and verdicts
//	• server/      – HTTP query API with Prometheus metrics
//	• cmd/pennant  – report, import and serve from the command line
//
// How does it decide?
//
//	For team T with best possible total W = wins(T) + remaining(T):
//
//	  source ──games(i,j)──▶ [i-j] ──∞──▶ (i) ──W-wins(i)──▶ sink
//	                               └──∞──▶ (j) ──W-wins(j)──▶
//
//	If the max flow cannot carry every remaining game between T's rivals,
//	some rival must pass W: T is eliminated, and the rivals on the source
//	side of the minimum cut form the certificate.
//
// Quick start:
//
//	d, _ := division.Load("teams4.txt")
//	r, _ := elimination.Compute(ctx, d)
//	_ = elimination.WriteText(os.Stdout, r)
//	// Philadelphia is eliminated by the subset R = { Atlanta New_York }
//
// See the package docs of division, elimination and flow for details, and
// examples/ for complete scenario programs.
package pennant
