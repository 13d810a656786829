/*
Package interpreter evaluates NASL statement trees.

An Interpreter walks statements produced by package syntax, reading and
writing variables in a runtime.Register and calling built-in functions found
in a runtime.Context. Run combines parsing and evaluation into a lazy
sequence of results, one per top-level statement:

    results := interpreter.Run(code, runtime.NewRegister(), ctx)
    for r, ok := results.Next(); ok; r, ok = results.Next() {
        if r.Err != nil {
            ...
        }
    }

Evaluation is synchronous and single-threaded; a Register must not be shared
between concurrently running interpreters.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package interpreter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nasl.interpreter'
func tracer() tracing.Trace {
	return tracing.Select("nasl.interpreter")
}
