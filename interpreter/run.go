package interpreter

import (
	"errors"
	"io"

	"github.com/npillmayer/nasl/runtime"
	"github.com/npillmayer/nasl/syntax"
)

// Result is the outcome of one top-level statement. Statement is nil for
// syntax and lexical errors.
type Result struct {
	Statement syntax.Statement
	Value     runtime.Value
	Err       error
}

// IsExit checks if a result carries the exit code of the script.
func (r Result) IsExit() bool {
	_, ok := r.Value.(runtime.Exit)
	return ok
}

// Results is a lazy sequence of results, one per top-level statement of a
// script. Statements are parsed and evaluated on demand by Next.
//
// A statement failing with a syntax or runtime error yields a result with
// Err set, and the sequence continues with the next statement. A lexical
// error or a call to exit() ends the sequence after its result.
type Results struct {
	parser *syntax.Parser
	interp *Interpreter
	seq    ResultGenerator
}

// ResultGenerator is a function type to generate results.
type ResultGenerator func() (Result, bool)

// Run creates a result sequence for a script. No statement is evaluated
// before the first call to Next.
func Run(code string, reg *runtime.Register, ctx *runtime.Context) *Results {
	results := &Results{
		parser: syntax.Parse(code),
		interp: New(reg, ctx),
	}
	results.seq = results.generator()
	return results
}

// Interpreter returns the interpreter evaluating the statements.
func (r *Results) Interpreter() *Interpreter {
	return r.interp
}

func (r *Results) generator() ResultGenerator {
	var S ResultGenerator
	S = func() (Result, bool) {
		stmt, err := r.parser.Next()
		if err == io.EOF {
			r.seq = nil
			return Result{}, false
		}
		if err != nil {
			var synErr *syntax.SyntaxError
			if !errors.As(err, &synErr) {
				r.seq = nil
			}
			return Result{Err: err}, true
		}
		v, err := r.interp.Resolve(stmt)
		result := Result{Statement: stmt, Value: v, Err: err}
		if err != nil {
			tracer().Infof("%v: %v", stmt, err)
		} else if result.IsExit() {
			tracer().Debugf("script exited with %v", v)
			r.seq = nil
		}
		return result, true
	}
	return S
}

// Next evaluates the next statement. It returns false if the sequence is
// done.
func (r *Results) Next() (Result, bool) {
	if r.Done() {
		return Result{}, false
	}
	return r.seq()
}

// Break signals the sequence to stop.
func (r *Results) Break() {
	r.seq = nil
}

// Done returns true if the sequence stopped.
func (r *Results) Done() bool {
	return r.seq == nil
}

// Restart rewinds the sequence to the start of the script. Variables
// already in the register are kept.
func (r *Results) Restart() {
	r.parser.Restart()
	r.seq = r.generator()
}

// All evaluates the remaining statements and collects their results.
func (r *Results) All() []Result {
	var all []Result
	for result, ok := r.Next(); ok; result, ok = r.Next() {
		all = append(all, result)
	}
	return all
}
