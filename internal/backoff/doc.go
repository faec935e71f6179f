// Package backoff computes the delay between bind attempts: a capped
// exponential base stepped by [wait.Backoff] plus an additive jitter drawn
// from an injectable source.
package backoff
