// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Conversion is fanned out over golang.org/x/sync/errgroup for batches;
// everything else is synchronous.
package services
