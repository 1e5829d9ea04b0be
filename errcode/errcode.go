// Package errcode defines the protocol error taxonomy surfaced to chaincode clients.
//
// Every failed check aborts the transaction with one of these codes. The
// rendered message always starts with the code so clients can switch on it.
package errcode

import (
	"errors"
	"fmt"
)

// Code identifies a protocol failure kind.
type Code string

const (
	ProtocolPaused       Code = "ProtocolPaused"
	ProductInactive      Code = "ProductInactive"
	PolicyNotActive      Code = "PolicyNotActive"
	DelayThresholdNotMet Code = "DelayThresholdNotMet"
	InvalidAmount        Code = "InvalidAmount"
	Unauthorized         Code = "Unauthorized"
	InsufficientPremium  Code = "InsufficientPremium"
	RecordExists         Code = "RecordExists"
	RecordNotFound       Code = "RecordNotFound"
	AlreadyInitialized   Code = "AlreadyInitialized"
	InvalidArgument      Code = "InvalidArgument"
	InsufficientFunds    Code = "InsufficientFunds"
)

// Error is a protocol failure with a stable code.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New builds an *Error with a formatted message.
func New(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error that keeps cause reachable through errors.Unwrap.
func Wrap(code Code, cause error, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: cause}
}

// Of returns a bare *Error usable as an errors.Is target.
func Of(code Code) *Error {
	return &Error{Code: code}
}

// Has reports whether err carries code anywhere in its chain.
func Has(err error, code Code) bool {
	return errors.Is(err, Of(code))
}

// CodeOf extracts the first code in err's chain, or "" when there is none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
