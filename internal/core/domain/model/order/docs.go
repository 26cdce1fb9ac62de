// Package order implements the order aggregate: the lifecycle state machine
// from Pending through Assigned and InProgress to Completed, the immutable
// line items that fix the order total at creation, the ordered trip-cost list
// with its derived net amount, and the append-only payment ledger.
//
// The aggregate guarantees that netAmount always equals totalAmount minus the
// sum of trip costs, that the total never changes after creation, and that
// status transitions cannot be taken out of order. Deletion is only permitted
// while Pending and substitutes for cancellation.
package order
