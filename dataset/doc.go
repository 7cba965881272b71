// SPDX-License-Identifier: MIT

// Package dataset ingests the two delimited inputs of the pipeline: the
// manuscript×locality participation table and the per-locality coordinate
// table.
//
// Every loader fails fast with an error naming the offending row and column;
// no partially parsed table is ever returned. AlignCoordinates guards the
// one cross-input invariant: coordinate rows must match participation
// columns one-to-one, in the same order, so a mismatch surfaces as an error
// here rather than as wrong geometry on the rendered map.
package dataset
