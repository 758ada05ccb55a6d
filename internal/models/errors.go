// Package models defines the core data structures shared across the service.
// It includes dataset records, chart views and the error taxonomy.
package models

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySelection matches any EmptySelectionError.
	ErrEmptySelection = errors.New("no data for country")

	// ErrDegenerateDomain is reported when every value of an axis is equal.
	ErrDegenerateDomain = errors.New("degenerate axis domain")
)

// DataLoadError is fatal to startup: the dataset file is missing or malformed.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("failed to load dataset %q: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// FieldParseError describes one numeric field of one row that could not be
// parsed. Line is the 1-based line in the source file.
type FieldParseError struct {
	Line  int
	Field Field
	Value string
	Err   error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("line %d: invalid %s value %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *FieldParseError) Unwrap() error {
	return e.Err
}

type EmptySelectionError struct {
	Country string
}

func (e *EmptySelectionError) Error() string {
	return fmt.Sprintf("%s: %q", ErrEmptySelection, e.Country)
}

func (e *EmptySelectionError) Is(target error) bool {
	return target == ErrEmptySelection
}
