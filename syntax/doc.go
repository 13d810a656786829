/*
Package syntax implements the front end for NASL scripts: a tokenizer,
a classifier mapping tokens to parse roles, and a Pratt-style statement
parser producing statement trees.

Parsing is lazy. A Parser delivers one top-level statement per call to Next,
so a consumer may interleave parsing and evaluation:

    p := syntax.Parse(`a = 1 + 2 * 3; display(a);`)
    for {
        stmt, err := p.Next()
        if err == io.EOF {
            break
        }
        ...
    }

Binding powers for infix operators, from loosest to tightest:

    =  +=  -= ...           2,1  (right associative)
    ||                      3,4
    &&                      5,6
    == != < > <= >= =~ ...  7,8
    |                       9,10
    ^                      11,12
    &                      13,14
    << >> >>>              15,16
    + -                    17,18
    * / %                  19,20
    **                     20,20 (right associative)

Unary prefix operators bind with 21, postfix ++ and -- with 22.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nasl.syntax'
func tracer() tracing.Trace {
	return tracing.Select("nasl.syntax")
}
