// Package garden counts the garden plots a walker can end on after an exact
// number of steps, on a bounded map and on the map repeated infinitely.
//
// On the bounded map Reachable is a plain BFS with a parity filter. On the
// infinite map an Expander grows the BFS frontier layer by layer, and
// InfiniteReachable watches the second differences of the counts with a lag
// of one map period. Those differences become periodic once the frontier
// has crossed a few tiles, so the window of the last period is used as a
// cycle fingerprint; when it repeats, the count for any step total follows
// from a quadratic per residue class. The quadratic is evaluated exactly and
// counts past the int range are reported as cycle.ErrOverflow.
//
// Complexity (W×H map, P period, T layers until the window is stable):
//
//   - Reachable(n): O(W×H).
//   - InfiniteReachable(n): O(min(n, T)²) time and space.
package garden
