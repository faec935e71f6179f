// Package core provides the internal implementation of portbind.
// It contains the Binder, which drives netutil's atomic probe through a
// bounded retry loop with exponential backoff and jitter (Bind), a one-shot
// diagnostic check (Available), and a sequential scan over a contiguous port
// range (Scan), plus the validated Config and package-level logger they share.
package core
