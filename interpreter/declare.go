package interpreter

import (
	"github.com/npillmayer/nasl/runtime"
	"github.com/npillmayer/nasl/syntax"
)

// declare handles local_var and global_var. A bare declaration keeps a
// value already defined in the same frame.
func (in *Interpreter) declare(d *syntax.Declare) (runtime.Value, error) {
	frame := in.reg.Frames().Current()
	define := in.reg.Declare
	if d.Keyword == syntax.KwGlobalVar {
		frame = in.reg.Frames().Globals()
		define = in.reg.DeclareGlobal
	}
	for _, target := range d.Targets {
		switch t := target.(type) {
		case *syntax.Variable:
			if frame.SymbolTable.ResolveTag(t.Token.Lexeme) == nil {
				define(t.Token.Lexeme, runtime.Null{})
			}
		case *syntax.Assign:
			v, err := in.eval(t.Value)
			if err != nil {
				return nil, err
			}
			define(tokenOf(t.Target).Lexeme, runtime.Clone(v))
		default:
			return nil, fail(TypeMismatch, d, "cannot declare %s", target)
		}
	}
	return runtime.Null{}, nil
}

// declareFunction registers a script function in the global frame.
func (in *Interpreter) declareFunction(f *syntax.FunctionDecl) (runtime.Value, error) {
	tracer().Debugf("declare function %s", f.Name.Lexeme)
	in.reg.DeclareGlobal(f.Name.Lexeme, runtime.Function{Decl: f})
	return runtime.Null{}, nil
}
