/*
Command nasl runs NASL scripts from files, from the command line or
interactively.

    nasl [flags] [script.nasl ...]

Without a script argument and without -e, nasl starts a read-eval-print
loop. Each line is run as a script of its own, sharing variables with the
lines before it.

Flags:

    -config file        read settings from a YAML file
    -target host        the host scripts run against (default 127.0.0.1)
    -include-path dir   directory for include()
    -trace level        trace level [Debug|Info|Error]
    -ast                print statement trees instead of evaluating
    -e code             run code given on the command line
    -functions          list the built-in functions and exit

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nasl.cli'
func tracer() tracing.Trace {
	return tracing.Select("nasl.cli")
}
