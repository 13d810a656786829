package interpreter

import (
	"errors"
	"fmt"

	"github.com/npillmayer/nasl/runtime"
	"github.com/npillmayer/nasl/syntax"
)

// InterpretErrorKind classifies runtime errors of scripts.
type InterpretErrorKind int8

// Kinds of interpreter errors.
const (
	UndeclaredVariable InterpretErrorKind = iota
	TypeMismatch
	IndexOutOfRange
	NotAnArray
	UnknownFunction
	DivisionByZero
	InvalidControlFlow
	RecursionLimit
	IncludeFailed
	FunctionFailed
)

var interpretErrorKinds = [...]string{
	"undeclared variable",
	"type mismatch",
	"index out of range",
	"not an array",
	"unknown function",
	"division by zero",
	"invalid control flow",
	"recursion limit reached",
	"include failed",
	"function failed",
}

func (k InterpretErrorKind) String() string {
	return interpretErrorKinds[k]
}

// InterpretError is an error raised while evaluating a statement.
type InterpretError struct {
	Kind      InterpretErrorKind
	Statement syntax.Statement // the statement which failed, if known
	Message   string
	Err       error // cause, for IncludeFailed and FunctionFailed
}

func (e *InterpretError) Error() string {
	if e.Err != nil {
		if e.Message != "" {
			return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *InterpretError) Unwrap() error {
	return e.Err
}

func fail(kind InterpretErrorKind, stmt syntax.Statement, format string, args ...interface{}) *InterpretError {
	return &InterpretError{Kind: kind, Statement: stmt, Message: fmt.Sprintf(format, args...)}
}

func failWith(kind InterpretErrorKind, stmt syntax.Statement, msg string, cause error) *InterpretError {
	return &InterpretError{Kind: kind, Statement: stmt, Message: msg, Err: cause}
}

// IsKind checks if err is an interpreter error of kind k.
func IsKind(err error, k InterpretErrorKind) bool {
	var ierr *InterpretError
	return errors.As(err, &ierr) && ierr.Kind == k
}

// --- Classification --------------------------------------------------------

// ErrorClass is a stable classification of all errors produced while
// running a script, for consumers outside the interpreter.
type ErrorClass int8

// Error classes.
const (
	UnknownError ErrorClass = iota
	LexError
	SyntaxError
	InterpretFailure
	FunctionError
	LoadError
)

var errorClassNames = [...]string{"unknown", "lexical", "syntax", "runtime", "function", "load"}

func (c ErrorClass) String() string {
	return errorClassNames[c]
}

// Classify maps an error onto its class. Causes take precedence over
// wrappers, i.e. a failed include caused by a missing file is a load error.
func Classify(err error) ErrorClass {
	var lexErr *syntax.LexError
	var synErr *syntax.SyntaxError
	var fnErr *runtime.FunctionError
	var loadErr *runtime.LoadError
	var ierr *InterpretError
	switch {
	case err == nil:
		return UnknownError
	case errors.As(err, &lexErr):
		return LexError
	case errors.As(err, &synErr):
		return SyntaxError
	case errors.As(err, &fnErr):
		return FunctionError
	case errors.As(err, &loadErr):
		return LoadError
	case errors.As(err, &ierr):
		return InterpretFailure
	}
	return UnknownError
}

// --- Control flow ----------------------------------------------------------

// Control flow travels up the evaluation as errors, until a statement
// handling it is reached.

type breakSignal struct{}

type continueSignal struct{}

type returnSignal struct {
	value runtime.Value
}

type exitSignal struct {
	code int64
}

func (breakSignal) Error() string    { return "break outside of loop" }
func (continueSignal) Error() string { return "continue outside of loop" }
func (returnSignal) Error() string   { return "return outside of function" }
func (exitSignal) Error() string     { return "exit" }
