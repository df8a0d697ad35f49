// Package services provides domain services for the order board.
//
// The package includes:
//   - CancellationPolicy: classifies whether a cancel command arrives inside
//     the order's cancellation window
//
// Domain services hold business rules that span an aggregate and the clock,
// and therefore don't naturally belong to the aggregate itself.
package services
