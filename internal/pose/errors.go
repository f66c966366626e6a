// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pose

import (
	"errors"
	"fmt"
)

// ErrInvariant reports that the loaded Dataset does not hold exactly one
// Record per input line.
var ErrInvariant = errors.New("record count does not match line count")

// ParseError reports a field token that is not a floating-point number.
type ParseError struct {
	Path  string
	Line  int // 1-based
	Field int // 0-based, before the field range is applied
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: field %d: cannot parse %q as a number", e.Path, e.Line, e.Field, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a failure to open, read, or write a file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IndexError reports a selection or reference index outside the Dataset.
type IndexError struct {
	What  string // "reference", "field" or "first record"
	Row   int
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	switch e.What {
	case "field":
		return fmt.Sprintf("row %d: field index %d out of range [0,%d)", e.Row, e.Index, e.Len)
	case "reference":
		return fmt.Sprintf("reference index %d out of range [0,%d)", e.Index, e.Len)
	default:
		return fmt.Sprintf("%s: index %d out of range [0,%d)", e.What, e.Index, e.Len)
	}
}
