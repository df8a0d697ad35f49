// Package kernel provides the core domain primitives of the order board.
//
// The package includes:
//   - OrderID: the counter-derived identity of an order ("ORD-<number>")
//   - UUID: a value object for merchant and product identifiers
//
// Both are immutable value objects constructed through factory functions that
// enforce validity, so the rest of the domain never handles malformed ids.
package kernel
