// Package ecobalance provides the types and functions of a single-user,
// local-first personal finance ledger.
//
// The core functionalities include:
//   - Ledger Management: recording income, expense and investment entries in
//     an in-memory store that assigns identifiers and enforces the sign of
//     amounts for each kind of entry.
//   - Investment Valuation: compounding the principal of investments daily,
//     from a monthly interest rate, up to a given date.
//   - Reporting: aggregating income, expenses and investment gains by
//     calendar month.
//   - Queries: selecting entries by date, kind or amount range, or through a
//     JSONPath expression.
//   - Data Persistence: loading and saving the whole ledger from and to a
//     human-readable CSV file.
//
// This package serves as the foundational logic for the `ecb` command-line
// tool. Nothing is persisted implicitly: changes made to a [Ledger] are lost
// unless it is explicitly saved with [SaveLedger].
package ecobalance
