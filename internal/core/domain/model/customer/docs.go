// Package customer contains the customer credit ledger aggregate.
//
// A Customer holds a running balance derived from an append-only list of
// signed Transaction entries. Credits raise the balance, debits lower it,
// and the balance may go negative when the customer owes.
package customer
