// Package layout generates mark positions along a board: equal divisions of
// a length, repeated fixed intervals, and evenly adjusted spacing between two
// fixed points.
//
// Every position is computed in decimal inches and snapped onto the tape with
// imperial.ToImperialMeasurement; the package does no rounding of its own.
// Invalid input produces an empty result, never an error, because callers
// drive it from live user input.
package layout
