// Package grid builds the evaluation axes of a sweep and the row-major 2D
// grid they span.
//
// An axis runs from Start to End inclusive in increments of Step. Its
// length uses a half-step tolerance so that rounding in (End−Start)/Step
// never drops the nominal end point:
//
//	n = ⌊(End − Start)/Step + ½⌋ + 1
//
// and value i is Start + i·Step (computed, never accumulated).
//
// A Grid pairs a row axis (pH) with a column axis (η). Point index
// i = row·Width + col, matching the order in which results are emitted.
package grid
