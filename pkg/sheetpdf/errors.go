package sheetpdf

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by the pipeline matches exactly one of
// these with errors.Is.
var (
	// ErrSourceNotFound indicates no matching input file exists.
	ErrSourceNotFound = errors.New("source not found")
	// ErrParseFailure indicates the input exists but is not a readable workbook.
	ErrParseFailure = errors.New("parse failure")
	// ErrPermissionDenied indicates required read or write access is missing.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrEmptyContent indicates composition was attempted without extracted text.
	ErrEmptyContent = errors.New("empty content")
	// ErrRenderFailure indicates the renderer could not produce a document.
	ErrRenderFailure = errors.New("render failure")
	// ErrIOFailure indicates the output destination could not be opened or written.
	ErrIOFailure = errors.New("i/o failure")
	// ErrInvalidRequest indicates layout parameters outside their valid range.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrBusy indicates the same operation is already in flight.
	ErrBusy = errors.New("operation in progress")
)

// Error is a failure of one pipeline operation.
type Error struct {
	Op   string // "load", "extract", "compose", "generate"
	Path string // file or directory involved, if any
	Kind error  // one of the Err* kinds
	Err  error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	op := e.Op
	if e.Path != "" {
		op = fmt.Sprintf("%s %q", e.Op, e.Path)
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewError creates a new Error.
func NewError(op, path string, kind, err error) *Error {
	return &Error{
		Op:   op,
		Path: path,
		Kind: kind,
		Err:  err,
	}
}

var kinds = []error{
	ErrSourceNotFound,
	ErrParseFailure,
	ErrPermissionDenied,
	ErrEmptyContent,
	ErrRenderFailure,
	ErrIOFailure,
	ErrInvalidRequest,
	ErrBusy,
}

// KindOf returns the failure kind of err, or nil when err carries none.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
