// Package errors provides error handling for lineage.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := loadTable(); err != nil {
//	    return errors.Wrap(err, "failed to load table")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "set columns.id in lineage.toml")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors. Wrap these with errors.Wrap() to add context while
// preserving the type for errors.Is().
var (
	// ErrMissingColumn indicates the input table lacks a structurally required column
	ErrMissingColumn = New("missing required column")

	// ErrUnsupportedFormat indicates the input file type cannot be read
	ErrUnsupportedFormat = New("unsupported table format")

	// ErrEmptyTable indicates the input has a header but no data rows (or nothing at all)
	ErrEmptyTable = New("table has no data rows")

	// ErrInvalidConfig indicates a configuration value failed validation
	ErrInvalidConfig = New("invalid configuration")

	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates the request was malformed or invalid
	ErrInvalidRequest = New("invalid request")

	// ErrNoDataset indicates no table has been loaded yet
	ErrNoDataset = New("no dataset loaded")
)

// IsMissingColumnError checks if an error is or wraps ErrMissingColumn
func IsMissingColumnError(err error) bool {
	return err != nil && Is(err, ErrMissingColumn)
}

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// WrapMissingColumn wraps ErrMissingColumn with the logical column and the
// header the table was expected to carry, plus a hint naming the config key.
func WrapMissingColumn(column, header string) error {
	err := Wrapf(ErrMissingColumn, "column %q (header %q)", column, header)
	return WithHintf(err, "add a %q header to the table or set columns.%s in lineage.toml", header, column)
}

// WrapInvalidConfig wraps ErrInvalidConfig with a formatted description
func WrapInvalidConfig(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidConfig, format, args...)
}

// WrapInvalidRequest wraps an error as an invalid-request error with context
func WrapInvalidRequest(err error, context string) error {
	return Wrap(Wrap(ErrInvalidRequest, err.Error()), context)
}
