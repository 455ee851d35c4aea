package csvfixture

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrFixtureNotFound indicates the fixture path does not resolve to a file
	ErrFixtureNotFound = errors.New("csvfixture: fixture not found")

	// ErrPermissionDenied indicates the fixture exists but cannot be read
	ErrPermissionDenied = errors.New("csvfixture: permission denied")

	// ErrUnsupportedFormat indicates an unsupported fixture extension
	ErrUnsupportedFormat = errors.New("csvfixture: unsupported fixture format")

	// ErrEmptyFixture indicates a fixture without even a header row
	ErrEmptyFixture = errors.New("csvfixture: empty fixture")

	// ErrIteratorClosed indicates Tuples was used after Close
	ErrIteratorClosed = errors.New("csvfixture: tuples iterator closed")

	// ErrUnwritableTuple indicates a tuple that Load could not read back as a
	// data row: it has no cells or its first cell starts with "#"
	ErrUnwritableTuple = errors.New("csvfixture: tuple cannot be written as a data row")
)

// ErrorContext provides context for where an error occurred
type ErrorContext struct {
	Operation string
	FilePath  string
	Row       int
	Details   string
}

// newErrorContext creates a new error context
func newErrorContext(operation, filePath string) *ErrorContext {
	return &ErrorContext{
		Operation: operation,
		FilePath:  filePath,
	}
}

// WithRow adds the 1-based data row (header excluded) to the error
func (ec *ErrorContext) WithRow(row int) *ErrorContext {
	ec.Row = row
	return ec
}

// WithDetails adds details to the error context
func (ec *ErrorContext) WithDetails(details string) *ErrorContext {
	ec.Details = details
	return ec
}

// Error creates a formatted error with context
func (ec *ErrorContext) Error(baseErr error) error {
	parts := []string{fmt.Sprintf("csvfixture: %s failed", ec.Operation)}

	if ec.FilePath != "" {
		parts = append(parts, "file: "+ec.FilePath)
	}
	if ec.Row > 0 {
		parts = append(parts, "row: "+strconv.Itoa(ec.Row))
	}
	if ec.Details != "" {
		parts = append(parts, "details: "+ec.Details)
	}

	context := strings.Join(parts, ", ")
	if baseErr != nil {
		return fmt.Errorf("%s: %w", context, baseErr)
	}
	return errors.New(context)
}
