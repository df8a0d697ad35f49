// Package order provides the domain entities of the live order board.
//
// The package includes:
//   - Order: the aggregate root carrying identity, timestamps, status and the
//     opaque checkout payload
//   - Status: the six lifecycle states and their wire representation
//   - Partition: the four disjoint collections the registry keeps orders in
//   - Payload/LineItem: the pass-through checkout data
//
// Key rules:
//   - Orders are created pending, inside the active partition
//   - pending, preparing and ready move freely among each other in place
//   - completed, undelivered and archived are partition moves
//   - the cancellation window is measured against the monotonic creation
//     instant, never the wall clock
package order
