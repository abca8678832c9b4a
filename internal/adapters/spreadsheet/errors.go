package spreadsheet

import "errors"

// Sentinel kinds for source errors. Any of these aborts the run: the
// pipeline has no partial-success mode.
var (
	ErrOpenSource    = errors.New("open source failed")
	ErrEmptySource   = errors.New("source has no data rows")
	ErrMissingColumn = errors.New("required column missing")
	ErrWriteOutput   = errors.New("write output failed")
)
