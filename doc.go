// Package mtf tracks equity positions bought through a margin trading
// facility (MTF), where part of each purchase is financed and accrues daily
// interest.
//
// The core functionalities include:
//   - Trade Normalization: turning loosely typed trade log records
//     ([RawTrade]) into canonical [Trade] values with a parsed date, an upper
//     case symbol, a side and per-trade charges.
//   - FIFO Matching: [Process] folds the date-ordered trades per symbol, sells
//     closing the oldest open lots first and splitting lots on partial fills.
//   - Interest Accrual: simple daily interest on the financed debit of every
//     lot, see [Accrue].
//   - Target Prices: the breakeven price and the price reaching each profit
//     target of an open position, see [ComputeTargets].
//
// A processing pass is a pure function of the trades and a [Config]: there is
// no hidden state, no clock reading and no I/O. The same trades and
// configuration always give the same [Result].
//
// This package serves as the foundational logic for the `mtf` command-line
// tool.
package mtf
