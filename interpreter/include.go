package interpreter

import (
	"strings"

	"github.com/npillmayer/nasl/runtime"
	"github.com/npillmayer/nasl/syntax"
)

// include loads a script through the loader of the context and evaluates
// it in the current register. The included script is parsed completely
// before any of its statements runs.
//
// A script may not include itself, directly or through other includes, and
// includes nest at most MaxCallDepth deep.
func (in *Interpreter) include(s *syntax.Include) (runtime.Value, error) {
	path, err := in.eval(s.Path)
	if err != nil {
		return nil, err
	}
	name := path.String()
	for _, open := range in.includes {
		if open == name {
			err = fail(IncludeFailed, s, "%s: include cycle %s", name,
				strings.Join(append(in.includes, name), " -> "))
			in.ctx.Logger().Errorf("%v", err)
			return nil, err
		}
	}
	if len(in.includes) >= in.MaxCallDepth {
		return nil, fail(RecursionLimit, s, "%s: include depth %d", name, len(in.includes))
	}
	code, err := in.ctx.Loader().Load(name)
	if err == nil {
		var stmts []syntax.Statement
		if stmts, err = syntax.Parse(code).All(); err == nil {
			return in.includeStatements(name, stmts)
		}
	}
	in.ctx.Logger().Errorf("include %s: %v", name, err)
	return nil, failWith(IncludeFailed, s, name, err)
}

func (in *Interpreter) includeStatements(name string, stmts []syntax.Statement) (runtime.Value, error) {
	tracer().Debugf("include %s: %d statements", name, len(stmts))
	in.includes = append(in.includes, name)
	defer func() { in.includes = in.includes[:len(in.includes)-1] }()
	for _, stmt := range stmts {
		if _, err := in.eval(stmt); err != nil {
			return nil, err
		}
	}
	return runtime.Null{}, nil
}

func (in *Interpreter) exit(s *syntax.Exit) (runtime.Value, error) {
	if s.Code == nil {
		return nil, exitSignal{}
	}
	v, err := in.eval(s.Code)
	if err != nil {
		return nil, err
	}
	code, _ := runtime.AsNumber(v)
	return nil, exitSignal{code: code}
}

func (in *Interpreter) returnStatement(s *syntax.Return) (runtime.Value, error) {
	if s.Value == nil {
		return nil, returnSignal{value: runtime.Null{}}
	}
	v, err := in.eval(s.Value)
	if err != nil {
		return nil, err
	}
	return nil, returnSignal{value: runtime.Clone(v)}
}
