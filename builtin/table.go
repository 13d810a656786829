/*
Package builtin provides tables of built-in functions for NASL scripts.

Built-ins receive their arguments through the register: the interpreter
pushes a frame for every call, holding named arguments under their names and
positional arguments as an array under _FCT_ANON_ARGS. Tables are immutable
after construction and may be shared between executions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package builtin

import (
	"sort"

	"github.com/npillmayer/nasl/runtime"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nasl.builtin'
func tracer() tracing.Trace {
	return tracing.Select("nasl.builtin")
}

// Table is a function table backed by a map.
type Table map[string]runtime.Builtin

// Lookup finds a function by name.
func (t Table) Lookup(name string) (runtime.Builtin, bool) {
	f, ok := t[name]
	return f, ok
}

// Names returns the function names of a table, sorted.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for n := range t {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Chain looks up functions in a sequence of tables. The first table
// containing a name wins.
type Chain []runtime.FunctionTable

// Lookup asks each table in turn.
func (c Chain) Lookup(name string) (runtime.Builtin, bool) {
	for _, t := range c {
		if f, ok := t.Lookup(name); ok {
			return f, true
		}
	}
	tracer().Debugf("no built-in function %q", name)
	return nil, false
}

var defaultChain = Chain{hostnameTable, coreTable, stringTable}

// Default returns the standard set of built-in functions.
func Default() runtime.FunctionTable {
	return defaultChain
}

// Hostname returns the table of functions describing the target host.
func Hostname() Table { return hostnameTable }

// Core returns the table of general functions.
func Core() Table { return coreTable }

// Strings returns the table of string functions.
func Strings() Table { return stringTable }

// --- Argument access -------------------------------------------------------

// arg returns the i-th positional argument of a call.
func arg(reg *runtime.Register, i int) (runtime.Value, bool) {
	args := reg.Positional()
	if i >= len(args) {
		return nil, false
	}
	return args[i], true
}

// requireArg returns the i-th positional argument or a MissingArgument error.
func requireArg(fn string, reg *runtime.Register, i int, name string) (runtime.Value, error) {
	if v, ok := arg(reg, i); ok {
		return v, nil
	}
	return nil, runtime.ErrMissingArgument(fn, name)
}

// stringArg returns a positional argument which has to be a string. Numbers
// are converted.
func stringArg(fn string, reg *runtime.Register, i int, name string) (string, error) {
	v, err := requireArg(fn, reg, i, name)
	if err != nil {
		return "", err
	}
	switch x := v.(type) {
	case runtime.String:
		return string(x), nil
	case runtime.Number, runtime.Null:
		return x.String(), nil
	}
	return "", runtime.ErrWrongArgument(fn, "%s must be a string, is %s", name, v.Type())
}

// numberArg returns a positional argument which has to be numeric.
func numberArg(fn string, reg *runtime.Register, i int, name string) (int64, error) {
	v, err := requireArg(fn, reg, i, name)
	if err != nil {
		return 0, err
	}
	n, ok := runtime.AsNumber(v)
	if !ok {
		return 0, runtime.ErrWrongArgument(fn, "%s must be a number, is %s", name, runtime.Inspect(v))
	}
	return n, nil
}
