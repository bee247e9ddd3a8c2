package thicket

import (
	"errors"
	"fmt"
)

// ParseError is returned for any syntactic problem in the input. It
// mirrors AmwStatusData from the reference implementation: a 1-based
// line number, a 0-based column, and a formatted description.
type ParseError struct {
	Line        int
	Position    int
	Description string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, position %d: %s", e.Line, e.Position, e.Description)
}

// errEndOfBlock is the in-band control sentinel signalling that the
// current block has no more lines, either because of an unindent or
// because the source is exhausted. It never escapes the package.
var errEndOfBlock = errors.New("thicket: end of block")

// errNotImplemented is returned by the built-in isodate/timestamp/json
// conversion-specifier stubs.
var errNotImplemented = errors.New("thicket: conversion specifier not implemented")

// ErrNotImplemented reports whether err came from a registered-but-
// unimplemented conversion specifier (isodate, timestamp, json).
func ErrNotImplemented(err error) bool {
	return errors.Is(err, errNotImplemented)
}

func (p *Parser) errorf(pos int, format string, args ...any) error {
	return &ParseError{
		Line:        p.lineNumber,
		Position:    pos,
		Description: fmt.Sprintf(format, args...),
	}
}

func (p *Parser) errorAt(line, pos int, format string, args ...any) error {
	return &ParseError{
		Line:        line,
		Position:    pos,
		Description: fmt.Sprintf(format, args...),
	}
}
