// Package services provides domain services that orchestrate business
// operations across multiple domain entities. It implements logic that
// doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - SettlementCalculator: aggregates a day's orders into the settlement
//     totals that feed the cash register
package services
