/*
Package runtime implements the runtime environment for the NASL interpreter,
consisting of values, memory frames and symbols (variable and function
declarations), and the execution context of a script.

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

Register

A Register is a stack of memory frames. The bottommost frame holds global
symbols, every call of a script function or built-in pushes a frame of its
own. Frames of calls are opaque: a lookup starting in a callee never sees
the locals of its callers, but falls through to the global frame.

Context

A Context carries everything a script execution needs from the outside
world: the target host, built-in functions, a loader for includes, a
logger, a DNS resolver and scanner preferences. It is built once per
execution and is read-only afterwards.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-23, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nasl.runtime'
func tracer() tracing.Trace {
	return tracing.Select("nasl.runtime")
}

// AnonArgs is the name under which positional call arguments are stored in
// the frame of a call.
const AnonArgs = "_FCT_ANON_ARGS"

// Builtin is the signature of built-in functions. A built-in reads its
// arguments from the top frame of the register: named arguments by name,
// positional arguments from AnonArgs.
type Builtin func(reg *Register, ctx *Context) (Value, error)

// FunctionTable resolves names of built-in functions.
type FunctionTable interface {
	Lookup(name string) (Builtin, bool)
}

// NoFunctions is a function table without any functions.
type NoFunctions struct{}

// Lookup always fails.
func (NoFunctions) Lookup(string) (Builtin, bool) {
	return nil, false
}
