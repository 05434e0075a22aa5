// Package kernel provides shared value objects used across domain aggregates.
//
// The package includes:
//   - Money: a non-negative decimal monetary amount
//   - Address: the delivery address embedded in an order
//
// Value objects are immutable after construction and validate their
// invariants in the constructor, so aggregates can hold them without
// re-checking. Money builds on github.com/shopspring/decimal; all monetary
// arithmetic in the application goes through it.
package kernel
