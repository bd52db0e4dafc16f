// Package timeinmarket simulates systematic investment plans (SIP) on a
// daily price history.
//
// Given the closing prices of an instrument, a fixed contribution amount and
// a recurring schedule (weekly on a weekday or monthly on a day of the
// month), [Simulate] computes for every trading day the cash invested so
// far, the shares owned, the resulting portfolio value, and the profit.
//
// A schedule is expressed against the calendar, but contributions only land
// on actual trading days: a target date falling on a weekend or holiday
// rolls forward to the next available trading day.
//
// The engine is a pure in-memory computation. Resolving an ISIN to a symbol
// and fetching the price history live in the yahoo subpackage; rendering
// lives in the renderer subpackage; the tims command in cmd ties them
// together.
package timeinmarket
