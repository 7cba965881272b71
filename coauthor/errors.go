// SPDX-License-Identifier: MIT
// Package coauthor: sentinel error set. All operations return these
// sentinels (possibly wrapped with context) and tests check them via
// errors.Is.

package coauthor

import "errors"

var (
	// ErrNoLocalities indicates a participation table with zero columns.
	ErrNoLocalities = errors.New("coauthor: no localities")

	// ErrEmptyLocality indicates a locality column with an empty name.
	ErrEmptyLocality = errors.New("coauthor: empty locality name")

	// ErrDuplicateLocality indicates two columns sharing one locality name.
	ErrDuplicateLocality = errors.New("coauthor: duplicate locality name")

	// ErrNegativeCount indicates a negative author count in the table.
	ErrNegativeCount = errors.New("coauthor: negative author count")

	// ErrColumnMismatch indicates a manuscript row whose cell count differs
	// from the locality column count.
	ErrColumnMismatch = errors.New("coauthor: row width differs from locality count")

	// ErrNilTable indicates a nil *ParticipationTable argument.
	ErrNilTable = errors.New("coauthor: nil participation table")

	// ErrUnknownLocality indicates a query for a locality name that is not a
	// column of the network.
	ErrUnknownLocality = errors.New("coauthor: unknown locality")
)
