// Package apperr defines the failure kinds of a generation run.
package apperr

import (
	"errors"
	"strings"
)

// Sentinel errors, one per failure kind. Match with errors.Is.
var (
	// ErrConfig indicates a missing or unparsable configuration.
	ErrConfig = errors.New("configuration error")
	// ErrConnectivity indicates an unknown driver or a failed connection.
	ErrConnectivity = errors.New("connectivity error")
	// ErrSchemaRead indicates a failure while enumerating tables or columns.
	ErrSchemaRead = errors.New("schema read error")
	// ErrWrite indicates a failure creating the output directory or a file.
	ErrWrite = errors.New("write error")
)

// Error carries the kind, a description of the failed operation and the cause.
type Error struct {
	Kind error  // one of the sentinels above
	Op   string // human readable description
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of this error's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// Config wraps err as a configuration error.
func Config(op string, err error) error {
	return &Error{Kind: ErrConfig, Op: op, Err: err}
}

// Connectivity wraps err as a connectivity error.
func Connectivity(op string, err error) error {
	return &Error{Kind: ErrConnectivity, Op: op, Err: err}
}

// SchemaRead wraps err as a schema read error.
func SchemaRead(op string, err error) error {
	return &Error{Kind: ErrSchemaRead, Op: op, Err: err}
}

// Write wraps err as a write error.
func Write(op string, err error) error {
	return &Error{Kind: ErrWrite, Op: op, Err: err}
}
