// Package imperial implements tape-measure arithmetic on imperial lengths.
//
// A length is held in folded form: feet are folded into whole inches and the
// remainder is a fraction of an inch (Measurement). All computation happens
// on decimal inches; results are snapped back onto a tape graduation
// (1/8, 1/16 or 1/32 inch) with halfway points rounding up.
//
// Contents
//
//   - Decimal conversion (ToDecimalInches)
//   - Fraction reduction (ReduceFraction)
//   - Quantization to tape marks (RoundToTapeMark, ToImperialMeasurement)
//   - Text parsing of feet/inch/fraction/decimal notations (ParseInput)
//   - Formatting as fractions or decimals (FormatImperialMeasurement,
//     FormatAsDecimal)
//   - Arithmetic and left-to-right expression evaluation (PerformOperation,
//     Evaluate)
//
// # Notes
//
// The package is pure: no I/O, no shared state. Malformed text is reported
// with ok == false rather than an error; invalid arithmetic (divide by zero)
// is reported with an error. Degenerate zero denominators are treated as
// "no fraction" so conversion and formatting never produce NaN or Inf.
package imperial
