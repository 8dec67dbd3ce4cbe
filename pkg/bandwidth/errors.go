package bandwidth

import "errors"

// Parse failures. All are fatal: the tool reports one diagnostic line and exits.
var (
	// ErrEmptyInput means the file had header rows but no data rows at all.
	ErrEmptyInput = errors.New("CSV file contains no data")

	// ErrParse wraps low-level CSV reader failures.
	ErrParse = errors.New("error parsing CSV")

	// ErrHeaderFormat means the first two header columns are not Date/Time fields.
	ErrHeaderFormat = errors.New("CSV header does not match expected format")

	// ErrNoTimestamps means no rows survived timestamp parsing and cleaning.
	ErrNoTimestamps = errors.New("no valid data after cleaning")

	// ErrNoSockets means no SKT-prefixed column groups were found.
	ErrNoSockets = errors.New("no SKT socket columns found in CSV")
)
