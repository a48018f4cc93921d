// Package platform tilts a rectangular platform of rolling rocks ('O') and
// fixed cube rocks ('#') and measures the load on its north support beams.
//
// A spin cycle tilts north, west, south, then east. Arrangements repeat
// after a short tail, so Spin and LoadAfterCycles hand the cycle to
// cycle.Advance with the rolling-rock bitset as fingerprint, which makes a
// billion spin cycles cost only the tail plus one loop.
//
// Complexity (W×H cells, T tail, L loop):
//
//   - Tilt, SpinCycle, Load, Fingerprint: O(W×H).
//   - Spin(n): O((T + L) · W×H) for any n.
package platform
