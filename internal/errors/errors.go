// Package errors provides error handling for finetype.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Safe, redactable formatting
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, ErrNotFound) {
//	    // handle not found
//	}
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
	WithHint        = crdb.WithHint
	WithHintf       = crdb.WithHintf
	WithDetail      = crdb.WithDetail
	WithDetailf     = crdb.WithDetailf
	WithSafeDetails = crdb.WithSafeDetails
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Kind identifies one of the error taxonomy buckets from the error handling
// design: Io, Parse, Schema, Integrity, Model, Classification, Validation.
type Kind string

const (
	KindIo             Kind = "io"
	KindParse          Kind = "parse"
	KindSchema         Kind = "schema"
	KindIntegrity      Kind = "integrity"
	KindModel          Kind = "model"
	KindClassification Kind = "classification"
	KindValidation     Kind = "validation"
)

// Located carries the error kind plus the offending location (a document
// path, taxonomy key, or row index) so the CLI can print a single
// diagnostic line: kind, location, description.
type Located struct {
	kind     Kind
	location string
	cause    error
}

func (e *Located) Error() string {
	if e.location == "" {
		return string(e.kind) + ": " + e.cause.Error()
	}
	return string(e.kind) + " at " + e.location + ": " + e.cause.Error()
}

func (e *Located) Unwrap() error { return e.cause }

// Kind returns the error taxonomy bucket of err, or "" if err was not
// produced by At.
func (e *Located) Kind() Kind { return e.kind }

// Location returns the offending document path / key / row index.
func (e *Located) Location() string { return e.location }

// At wraps err with a Kind and a location string, fatal errors being those
// of KindIo, KindParse, KindSchema, KindIntegrity, and KindModel at load
// time. Callers inspect it with errors.As.
func At(kind Kind, location string, cause error) error {
	return &Located{kind: kind, location: location, cause: WithStack(cause)}
}

// Atf formats a message and wraps it with At.
func Atf(kind Kind, location string, format string, args ...interface{}) error {
	return At(kind, location, Newf(format, args...))
}

// KindOf extracts the Kind from err if it (or something it wraps) is a
// *Located, reporting ok=false otherwise.
func KindOf(err error) (Kind, bool) {
	var located *Located
	if As(err, &located) {
		return located.kind, true
	}
	return "", false
}

// IsFatal reports whether a Kind belongs to the set of load-time fatal
// errors per the error handling design: Io, Parse, Schema, Integrity, Model.
func IsFatal(k Kind) bool {
	switch k {
	case KindIo, KindParse, KindSchema, KindIntegrity, KindModel:
		return true
	default:
		return false
	}
}
