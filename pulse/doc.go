// Package pulse simulates networks of flip-flop and conjunction modules
// driven by a button, and answers the two long-horizon questions they pose
// without pressing the button a trillion times.
//
// What:
//
//   - Parse reads "name -> a, b" lines into an arena of modules addressed by
//     integer ID. Conjunction memory is a slice indexed by input slot.
//   - Press sends one Low pulse from the button and propagates pulses in
//     FIFO order, returning how many Low and High pulses were sent.
//   - PressMany and PulseProduct total pulse counts over many presses with
//     cycle.Accumulate: latch configurations repeat, so only the tail and
//     one loop are simulated.
//   - Wiring exposes the module graph as a core.Graph. Branches walks its
//     reverse with bfs to split the network in front of a sink's hub
//     conjunction into independent sub-networks, finds each one's cycle with
//     cycle.Detect, and records the press at which its feeder fires.
//     PressesUntilLow combines the branches with cycle.Combine (CRT), so
//     branches whose first firing differs from their period are handled
//     exactly.
//
// Branch rules:
//
//	A feeder must send the hub a High pulse and then a Low one within the
//	same press, so the hub slot is never left High between presses. From
//	its first firing on, it must fire exactly at Offset + k·L, L being the
//	branch cycle length. Violations are ErrIrregularBranch; such networks
//	can still be solved with PressesUntilLowDirect.
//
// Fingerprint:
//
//	One byte per flip-flop ('0'/'1') and a bracketed bit string per
//	conjunction, in ID order. Pulse counters are never part of it.
//
// Errors:
//
//   - ErrMalformedLine, ErrDuplicateModule, ErrNoBroadcaster from Parse.
//   - ErrUnknownModule, ErrNoHub, ErrIrregularBranch from Branches.
//   - ErrLimit from PressesUntilLowDirect.
//   - cycle errors are wrapped and surface through errors.Is.
package pulse
