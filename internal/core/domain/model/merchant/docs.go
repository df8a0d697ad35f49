// Package merchant provides the aggregates of the admin subsystem: the
// merchant profile, its product catalog, and self-reported monthly sales.
//
// Key business rules:
//   - merchants start on a 30-day trial and are deactivated when it lapses
//   - slugs are the public storefront identifiers and must be unique
//     (enforced by the repository layer)
//   - money values travel as decimal strings end to end
//   - the sales commission (1%) is fixed at report time
package merchant
