// Package tomtax computes capital gains tax lots for securities trading.
//
// The core is a First-In-First-Out lot matching engine: every sell is
// matched against the oldest still open buy lots of the same instrument,
// splitting lots as needed, and one report row is produced per match with
// the realized gain in the home currency (AUD).
//
// Around the engine the package provides:
//   - Exact decimal Money and Quantity types, so repeated partial-lot
//     divisions never drift by a cent.
//   - A Transaction model with validated construction, partial derivation
//     and stock split adjustment.
//   - A split adjustment pass that rescales trades dated before a later
//     split so quantities and prices are comparable across the boundary.
//   - CSV import/export of trades and a JSONL split schedule format.
//   - A conversion pass that prices foreign currency trades in the home
//     currency from a historical exchange rate table (see the rba package).
//
// This package serves as the foundational logic for the `tt` command-line
// tool.
package tomtax
