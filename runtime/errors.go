package runtime

import "fmt"

// FunctionErrorKind classifies failures of built-in functions.
type FunctionErrorKind int8

// Kinds of function errors.
const (
	MissingArgument FunctionErrorKind = iota
	WrongArgument
	Diagnostic
)

var functionErrorKinds = [...]string{"missing argument", "wrong argument", "diagnostic"}

func (k FunctionErrorKind) String() string {
	return functionErrorKinds[k]
}

// FunctionError is returned by built-in functions.
type FunctionError struct {
	Function string
	Kind     FunctionErrorKind
	Message  string
	Err      error // optional cause
}

func (e *FunctionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Function, e.Kind, e.Message)
}

func (e *FunctionError) Unwrap() error {
	return e.Err
}

// ErrMissingArgument creates an error for a required argument not passed.
func ErrMissingArgument(function, arg string) *FunctionError {
	return &FunctionError{Function: function, Kind: MissingArgument, Message: arg}
}

// ErrWrongArgument creates an error for an argument of the wrong type or value.
func ErrWrongArgument(function, format string, args ...interface{}) *FunctionError {
	return &FunctionError{Function: function, Kind: WrongArgument, Message: fmt.Sprintf(format, args...)}
}

// ErrDiagnostic creates an error for other failures of a function.
func ErrDiagnostic(function string, cause error) *FunctionError {
	return &FunctionError{Function: function, Kind: Diagnostic, Message: cause.Error(), Err: cause}
}

// LoadErrorKind classifies failures of loaders.
type LoadErrorKind int8

// Kinds of load errors.
const (
	NotFound LoadErrorKind = iota
	IO
)

// LoadError is returned by loaders.
type LoadError struct {
	Name string
	Kind LoadErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	if e.Kind == NotFound {
		return fmt.Sprintf("cannot load %q: not found", e.Name)
	}
	return fmt.Sprintf("cannot load %q: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
