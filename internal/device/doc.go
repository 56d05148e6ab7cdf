// Package device defines the boundary toward the platform audio layer.
//
// Backend enumerates and opens endpoints; Endpoint reads a level snapshot
// and writes master or channel levels, speaking percentages in [0, 100]
// (the backend owns the linear mapping to the device's 0.0-1.0 scalar).
// Apply commits a resolved level map to an endpoint as one batch, collecting
// per-channel failures rather than stopping at the first one, and CommitLock
// serialises the snapshot-to-write window across concurrent invocations.
//
// The in-tree system backend is a stub; real backends live with the
// platform integration. Tests use the fake in internal/testsupport.
package device
