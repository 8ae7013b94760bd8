// Package smerr defines the error type raised throughout the sensor model
// framework. Every failure carries a Kind for application-level control flow,
// a human-readable message, and the name of the originating operation.
package smerr

import (
	"errors"
	"fmt"
)

// Kind enumerates the categories of sensor model framework errors.
type Kind int

// The framework error kinds. Bounds and IndexOutOfRange are the ones raised
// by the correlation packages; the remainder exist for other framework
// components that share this type.
const (
	Algorithm Kind = iota + 1
	Bounds
	IllegalMathOperation
	IndexOutOfRange
	InvalidSensorModelState
	InvalidUse
	UnsupportedFunction
	Unknown
)

func (k Kind) String() string {
	switch k {
	case Algorithm:
		return "Algorithm"
	case Bounds:
		return "Bounds"
	case IllegalMathOperation:
		return "IllegalMathOperation"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case InvalidSensorModelState:
		return "InvalidSensorModelState"
	case InvalidUse:
		return "InvalidUse"
	case UnsupportedFunction:
		return "UnsupportedFunction"
	default:
		return "Unknown"
	}
}

// Error is the error value raised by sensor model components. Function is the
// qualified name of the operation that detected the failure, for example
// "corrmodel.FourParameterModel.SetCorrelationGroupParameters".
type Error struct {
	Kind     Kind
	Message  string
	Function string
}

// New returns an Error with the given kind, message, and originating function.
func New(kind Kind, message, function string) *Error {
	return &Error{Kind: kind, Message: message, Function: function}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Function, e.Kind, e.Message)
}

// KindOf returns the Kind carried by err, unwrapping as needed. Errors that
// did not originate from this package report Unknown.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return Unknown
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
