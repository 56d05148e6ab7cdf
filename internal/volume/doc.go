// Package volume implements the adjustment grammar and the snapshot-based
// reference resolver that turn command-line tokens into final channel levels.
//
// An adjustment token has the shape [selector][op]value, for example "50",
// "l+10", "r=l", "a75", or "2=c0". ParseCommand turns the positional tokens
// into a []Op; Resolve evaluates every Op against a single immutable
// Snapshot of the endpoint's current levels and produces the Resolved map of
// final clamped percentages.
//
// The central rule is that every operand is evaluated against the snapshot
// only, never against a value produced earlier in the same command. That
// makes resolution order-independent: "l=r r=l" is an exact swap no matter
// which token comes first. The one place order matters is when two tokens
// target the same concrete channel, where the later token wins.
//
// Levels are percentages in [0, 100]; every resolved value is clamped into
// that range. The package has no platform dependencies.
package volume
