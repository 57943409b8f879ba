package stylus

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches one of them with [errors.Is].
var (
	// ErrFormat reports a sheet whose content does not match its declared layout.
	ErrFormat = errors.New("format error")
	// ErrMissingMetadataKey reports a Stylus sheet lacking a required range descriptor.
	ErrMissingMetadataKey = errors.New("missing metadata key")
	// ErrIO reports a workbook that cannot be read or written.
	ErrIO = errors.New("io error")
	// ErrMergeConflict reports two portfolios disagreeing on a fund in strict mode.
	ErrMergeConflict = errors.New("merge conflict")
)

// FormatError describes where a sheet deviates from its declared layout.
type FormatError struct {
	Sheet  string
	Cell   string // optional, the offending cell
	Reason string
}

func (e *FormatError) Error() string {
	if e.Cell != "" {
		return fmt.Sprintf("sheet %q cell %s: %s", e.Sheet, e.Cell, e.Reason)
	}
	return fmt.Sprintf("sheet %q: %s", e.Sheet, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// MissingKeyError names the required metadata key that was not found.
type MissingKeyError struct {
	Sheet string
	Key   string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("sheet %q: metadata key %q is missing", e.Sheet, e.Key)
}

func (e *MissingKeyError) Unwrap() error { return ErrMissingMetadataKey }

// ConflictError reports a fund field with two different non blank values.
type ConflictError struct {
	ID     string
	Field  string
	Values [2]string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("fund %q: conflicting %s %q and %q", e.ID, e.Field, e.Values[0], e.Values[1])
}

func (e *ConflictError) Unwrap() error { return ErrMergeConflict }

// ioError wraps err as an ErrIO.
func ioError(format string, err error, args ...any) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, fmt.Sprintf(format, args...), err)
}

// formatErrorf is a convenient factory for FormatError.
func formatErrorf(sheet, cell, format string, args ...any) *FormatError {
	return &FormatError{Sheet: sheet, Cell: cell, Reason: fmt.Sprintf(format, args...)}
}
