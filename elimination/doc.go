// SPDX-License-Identifier: MIT

// Package elimination decides, for every team in a division, whether it is
// mathematically eliminated from finishing with the most wins, and if so
// names a certificate: a subset of rivals that jointly block it.
//
// For a target team T, with max(T) = wins(T) + remaining(T):
//
//  1. Trivial check. Any rival R with wins(R) > max(T) eliminates T on its
//     own; the certificate is exactly those rivals and no network is built.
//  2. Flow reduction. BuildNetwork constructs source → game(i,j) edges with
//     capacity games(i,j), game(i,j) → team(i), team(j) edges with capacity
//     flow.Unbounded, and team(i) → sink edges with capacity max(T) - wins(i).
//  3. T is eliminated iff the max flow is below the total number of games
//     among the rivals. The certificate is the set of rivals whose vertex is
//     on the source side of the minimum cut.
//
// A team that can at best tie the leader is not eliminated.
//
// Compute runs the check for every team, concurrently on a bounded
// errgroup, and returns an immutable Report. A failure for any team aborts
// the whole pass; no partial Report is ever returned.
//
//	d, _ := division.Load("teams4.txt")
//	r, _ := elimination.Compute(ctx, d, elimination.WithAlgorithm("dinic"))
//	ok, _ := r.IsEliminated("Philadelphia")     // true
//	cert, _ := r.CertificateOfElimination("Philadelphia") // [Atlanta New_York]
package elimination
