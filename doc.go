/*
Package nasl is a front end and evaluator for NASL, the scripting language
used to describe network vulnerability tests against a target host.

Package structure is as follows:

■ syntax: Package syntax implements the tokenizer (based on lexmachine), a
Pratt-style statement parser and the statement tree.

■ runtime: Package runtime provides values, the register (a stack of memory
frames holding variables and functions) and the execution context.

■ interpreter: Package interpreter walks statement trees and produces values.

■ builtin: Package builtin contains tables of native functions callable from
scripts.

■ config: Package config reads execution settings from YAML files.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nasl
