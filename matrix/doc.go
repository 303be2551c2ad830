// Package matrix provides the dense square storage shared by distance and
// pheromone tables of the antcolony solver.
//
// What & Why:
//
//	A colony reads an immutable N×N distance table and mutates its own N×N
//	pheromone table on every iteration. Both are plain row-major float64
//	buffers; the Matrix interface keeps call sites independent of the
//	concrete layout while *Dense unlocks flat-slice fast paths in the hot
//	loops (row scans during candidate scoring, whole-table decay).
//
// Contents:
//
//   - Matrix  : minimal bounds-checked interface (Rows/Cols/At/Set/Clone).
//   - Dense   : row-major implementation with Row views and in-place Add.
//   - Validate: shape guards (nil, square, same shape) returning sentinels.
//   - Fill/Scale: in-place element-wise kernels used for initialization
//     and multiplicative decay.
//
// Numeric policy:
//
//	The package never rejects ±Inf: a distance table uses +Inf on its
//	diagonal and for missing edges. Domain validation lives in package aco.
//
// Complexity:
//
//	Rows/Cols/At/Set run in O(1); Clone, Fill and Scale in O(r*c).
package matrix
