// Package product contains the stock ledger aggregate.
//
// A Product carries a stock level derived from an append-only list of
// signed Movement entries. Stock may go negative. Purchases at a new cost
// price fork a variant product instead of repricing the original, so each
// batch keeps its own margin.
package product
