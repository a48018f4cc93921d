// Package cyclesim fast-forwards deterministic simulations to very large
// step counts by detecting when their state repeats.
//
// A simulation is a Step function over some state plus a Fingerprint that
// reduces the state to a comparable key. Once a fingerprint repeats, every
// later state is known, so only the tail and one loop are ever executed.
//
// Packages:
//
//	cycle/     Step/Fingerprint contracts, Ledger, Project, Advance,
//	            Accumulate, Detect, and multi-branch Combine (LCM and CRT)
//	grid/      rectangular text grids, directions, tiles, wrapping
//	platform/  tilting platform of rolling rocks and its spin cycle
//	pulse/     button-driven flip-flop/conjunction pulse networks
//	garden/    step counting on a bounded and an infinitely tiled garden
//	springs/   arrangement counting for damaged-spring records
//	core/      string-ID graph used for module wiring
//	bfs/       breadth-first search over core graphs
//	fixture/   YAML fixtures holding example inputs and expected answers
//
// Quick start:
//
//	p, _ := platform.Parse(input)
//	res, _ := p.Spin(1_000_000_000, cycle.WithLogger(logger))
//	fmt.Println(res.State.Load(), res.Cycle)
//
// Every long-running call accepts cycle options; the logger defaults to
// zerolog.Nop() and MaxSteps to cycle.DefaultMaxSteps.
package cyclesim
