// Package interest evaluates the compound-interest formula
//
//	A  = P · (1 + r/n)^(n·t)
//	CI = A − P
//
// where P is the principal, r the annual rate as a fraction (callers pass a
// percentage; 5.5 means 5.5%), n the number of compounding periods per
// year and t the time in years.
//
// API:
//
//	func Compound(principal, ratePercent, time, frequency float64) (float64, error)
//	func Amount(principal, ratePercent, time, frequency float64) (float64, error)
//	func Schedule(principal, ratePercent, time, frequency float64) ([]Period, error)
//
// Validation:
//
//   - ErrNonFinite        — any argument is NaN or ±Inf.
//   - ErrBadFrequency     — frequency ≤ 0.
//   - ErrNegativeTime     — time < 0.
//   - ErrTooManyPeriods   — Schedule would produce more than MaxSchedulePeriods rows.
//
// All of them wrap ErrInvalidArgument. Negative principals and negative
// rates are accepted: the formula is evaluated as-is with standard
// floating-point semantics.
package interest
