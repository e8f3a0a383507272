// Package tracker implements a personal finance ledger: income and expense
// transactions with running summaries, persisted as JSON in a local state
// directory.
//
// The package splits into three layers:
//
//   - Store: the ordered transaction collection and its persistence. Every
//     mutation writes the complete collection to disk before returning.
//   - Aggregation: pure functions deriving totals, date-windowed sums, and
//     category breakdowns from a transaction slice, always within a single
//     currency.
//   - Tracker: the lifecycle controller. It validates user input, mutates
//     the store, and reports outcomes through the Notifier and Confirmer
//     interfaces.
package tracker
