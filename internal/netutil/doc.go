// Package netutil provides the single-bind primitive portbind is built on.
//
// Its central type, Prober, claims a (port, host) pair with exactly one
// listen call and no prior availability check, so the kernel's bind is the
// only arbiter between competing callers. Probe releases the socket again
// immediately; Claim hands the open listener to the caller. Every attempt is
// bounded by its own deadline timer and cleans up its socket on all exit paths.
package netutil
