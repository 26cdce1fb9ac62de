// Package register contains the daily cash register aggregate.
//
// A Register is the cash drawer for one calendar day: it opens with a
// starting balance, accumulates deposits and withdrawals, receives the
// synced cash and pix totals of the day's completed orders, and closes by
// freezing a computed closing balance. At most one register exists per date.
package register
