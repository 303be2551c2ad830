// Package tsplib reads TSPLIB problem files into distance matrices.
//
// Supported inputs:
//
//	TYPE:              TSP, ATSP
//	EDGE_WEIGHT_TYPE:  EXPLICIT, EUC_2D, CEIL_2D, MAN_2D, ATT, GEO
//	EDGE_WEIGHT_FORMAT (EXPLICIT only):
//	                   FULL_MATRIX, UPPER_ROW, LOWER_ROW,
//	                   UPPER_DIAG_ROW, LOWER_DIAG_ROW and their *_COL twins
//
// Distances of coordinate instances follow the TSPLIB rounding rules
// (nint for EUC_2D and MAN_2D, ceiling for CEIL_2D, the pseudo-Euclidean
// ATT rule and the geographical GEO rule). The diagonal of every matrix
// returned by DistanceMatrix is +Inf: a node is never its own successor.
//
// Node labels in TSPLIB files are 1-based; matrix indices are 0-based.
// Node i of a file becomes index i-1.
package tsplib
