// Package order provides the order aggregate root and its lifecycle state
// machine for the food-ordering domain.
//
// The package includes:
//   - Order: the aggregate root owning line items, monetary totals,
//     lifecycle timestamps, and pending domain events
//   - Item: a line item snapshotting product name and unit price
//   - Status: the CREATED/CONFIRMED/DELIVERED/CANCELLED state machine,
//     driven by an explicit transition table
//   - Event: domain events raised on confirmation and cancellation
//
// Key business rules:
//   - Allowed transitions are CREATED→CONFIRMED, CREATED→CANCELLED, and
//     CONFIRMED→DELIVERED; everything else fails with a business error
//   - Total = subtotal + shipping fee, recomputed explicitly via ComputeTotal
//   - The order code is generated once, at first persistence
//   - Pending events are drained only after the owning transaction commits
package order
