// Package cost contains the operational expense entry.
//
// A Cost is a dated expense under a closed category set. Costs feed the
// daily cost view only; they are never netted against order amounts.
package cost
