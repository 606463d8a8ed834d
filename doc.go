// Package stockmarket provides the domain model and the transaction engine of
// a single player, turn based stock trading simulator.
//
// The core functionalities include:
//   - Market: the list of tradable stocks and their current offer price.
//   - Portfolio: the holdings of a player, merged by stock name on purchase
//     and liquidated, partially or fully, on sale.
//   - Broker: a stateless engine that validates and settles buy and sell
//     requests against a player's cash and portfolio.
//   - Data Persistence: a line oriented, human-readable text encoding of
//     players and of the market, wrapped by repositories with an explicit
//     load/save lifecycle.
//
// This package serves as the foundational logic for the `sms` command-line
// tool. Everything here works in memory; only the repositories touch files.
package stockmarket
