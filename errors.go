package visitology

import (
	"errors"
	"fmt"
)

// Code represents numeric error code
type Code int

const (
	CodeMissingHandler Code = iota
	CodeInvalidHandler
	CodeMissingMethod
	CodeInvalidMethod //reserved, method name is always a string
	CodeUnknownMethod
	CodeDuplicateEntry
	CodeUnknownEntry
	CodeNoMatchingEntry
	CodeInvalidSignature
	CodeElementMismatch
)

var (
	//ErrInvalidBinding binding handler or method is missing or invalid
	ErrInvalidBinding = errors.New("invalid binding")
	//ErrUnknownMethod binding method does not exist on handler
	ErrUnknownMethod = errors.New("unknown method")
	//ErrDuplicateEntry entry already exists
	ErrDuplicateEntry = errors.New("duplicate entry")
	//ErrUnknownEntry entry does not exist
	ErrUnknownEntry = errors.New("unknown entry")
	//ErrNoMatchingEntry neither element nor default entry exists
	ErrNoMatchingEntry = errors.New("no matching entry")
	//ErrElementMismatch element can not be passed to bound handler
	ErrElementMismatch = errors.New("element mismatch")
)

// Error represents registry error
type Error struct {
	Kind    error
	Code    Code
	Message string
	Args    []interface{}
}

// Error returns formatted message
func (e *Error) Error() string {
	if len(e.Args) == 0 {
		return e.Message
	}
	return fmt.Sprintf(e.Message, e.Args...)
}

// Unwrap returns error kind, so errors.Is(err, ErrXXX) matches
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, code Code, message string, args ...interface{}) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Args: args}
}

// CodeOf returns error code or -1 if err is not a registry error
func CodeOf(err error) Code {
	var regErr *Error
	if errors.As(err, &regErr) {
		return regErr.Code
	}
	return -1
}
