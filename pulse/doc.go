// Package pulse simulates a network of pulse-forwarding modules driven
// by a button.
//
// Modules are a tagged variant (Kind): the broadcaster forwards what it
// receives, a flip-flop toggles on low pulses and emits its new state,
// a conjunction remembers the last pulse from each input and emits low
// only when all of them were high. All mutable state lives in Network;
// Module is a plain description.
//
// Pulses are processed in FIFO order within one button press. Press
// returns per-press tallies; PressN multiplies the low and high totals.
//
// PressesUntilLow does not brute-force the target: it assumes the target
// is fed by exactly one conjunction whose inputs each emit their first
// high pulse periodically, and returns the LCM of those first presses.
// Networks of any other shape yield ErrUnsupportedTopology.
package pulse
