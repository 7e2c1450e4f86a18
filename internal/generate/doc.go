// Package generate implements the generation driver: for every catalog entry
// it checks for an existing image, otherwise invokes the external
// text-to-image tool under a per-item timeout and records the outcome.
// Failures are scoped to a single plant and never abort the run; only
// cancellation of the parent context does.
package generate
