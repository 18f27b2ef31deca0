package rowgroup

import "errors"

// Standard errors returned by the rowgroup package.
// All grouping errors are raised synchronously during validation and query
// construction; extraction never fails on missing metadata.
var (
	// ErrBadGroupFormat indicates a malformed grouping request: the column
	// list is not an ordered sequence, a column reference has an unsupported
	// type, or the bucket count is not a true positive integer.
	ErrBadGroupFormat = errors.New("bad group format")

	// ErrInvalidGroupType indicates an unrecognized grouping mode.
	ErrInvalidGroupType = errors.New("invalid group type")

	// ErrGroupFieldNotFound indicates a grouping column that does not exist
	// in the target table.
	ErrGroupFieldNotFound = errors.New("group field not found")

	// ErrReservedColumn indicates the target table already has a column with
	// the reserved group metadata name.
	ErrReservedColumn = errors.New("column name reserved for group metadata")

	// ErrInvalidConfig indicates ServiceConfig validation failed.
	ErrInvalidConfig = errors.New("invalid service config")
)
