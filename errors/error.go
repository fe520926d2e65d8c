package errors

import (
	"fmt"
)

// InvalidArgumentError occurs when a constructor or configuration receives arguments which violate its contract
type InvalidArgumentError struct{ Msg string }

// Error returns a textual representation of this InvalidArgumentError
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("Invalid argument: %s", e.Msg)
}

// IndexOutOfRangeError occurs when a field index lies outside of [0, Size)
type IndexOutOfRangeError struct {
	Index int
	Size  int
}

// Error returns a textual representation of this IndexOutOfRangeError
func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("Index %d out of range for row of size %d", e.Index, e.Size)
}

// UnsupportedOperationError occurs when a read-only Row is asked to perform a modification
type UnsupportedOperationError struct{ Op string }

// Error returns a textual representation of this UnsupportedOperationError
func (e UnsupportedOperationError) Error() string {
	return fmt.Sprintf("Operation %s is not supported", e.Op)
}

// TypeMismatchError occurs when a value does not have the Go type a caller or a ColumnType expects
type TypeMismatchError struct {
	Expected string
	Actual   string
}

// Error returns a textual representation of this TypeMismatchError
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("Type mismatch: expected %s, found %s", e.Expected, e.Actual)
}

// NilValueError occurs when a value in a Row is null
type NilValueError struct{ Name string }

// Error returns a textual representation of this NilValueError
func (e NilValueError) Error() string {
	return fmt.Sprintf("Value for column %s is nil", e.Name)
}

// MalformedValueError occurs when the raw bytes stored in a Block do not fit the width of their ColumnType
type MalformedValueError struct {
	Type     string
	Expected int
	Actual   int
}

// Error returns a textual representation of this MalformedValueError
func (e MalformedValueError) Error() string {
	return fmt.Sprintf("Malformed %s value: expected %d bytes, found %d", e.Type, e.Expected, e.Actual)
}

// IncompatibleRowError occurs when a Row's width does not match the channels of a Page
type IncompatibleRowError struct {
	Expected int
	Actual   int
}

// Error returns a textual representation of this IncompatibleRowError
func (e IncompatibleRowError) Error() string {
	return fmt.Sprintf("Row width %d is not compatible with page width %d", e.Actual, e.Expected)
}

// PageFullError occurs when a Page has reached its max size and a new Row insertion is attempted
type PageFullError struct{}

// Error returns a textual representation of this PageFullError
func (e PageFullError) Error() string {
	return "Page is full"
}
