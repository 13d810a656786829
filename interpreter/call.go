package interpreter

import (
	"github.com/npillmayer/nasl/runtime"
	"github.com/npillmayer/nasl/syntax"
)

type arguments struct {
	named      map[string]runtime.Value
	order      []string
	positional runtime.Array
}

// call calls a script function or a built-in. Script functions shadow
// built-ins of the same name.
func (in *Interpreter) call(c *syntax.Call) (runtime.Value, error) {
	name := c.Name.Lexeme
	decl, isScript := in.reg.Function(name)
	var builtin runtime.Builtin
	if !isScript {
		var ok bool
		if builtin, ok = in.ctx.Functions().Lookup(name); !ok {
			return nil, fail(UnknownFunction, c, "%s", name)
		}
	}
	args, err := in.arguments(c)
	if err != nil {
		return nil, err
	}
	if in.reg.Depth() >= in.MaxCallDepth {
		return nil, fail(RecursionLimit, c, "%s: call depth %d", name, in.reg.Depth())
	}
	kind := runtime.BuiltinFrame
	if isScript {
		kind = runtime.FunctionFrame
	}
	tracer().Debugf("call %s with %d arguments", name, len(args.order)+len(args.positional))
	in.reg.PushFrame(name, kind)
	defer in.reg.PopFrame()
	for _, n := range args.order {
		in.reg.Declare(n, args.named[n])
	}
	in.reg.Declare(runtime.AnonArgs, args.positional)
	if isScript {
		return in.callScript(c, decl)
	}
	v, err := builtin(in.reg, in.ctx)
	if err != nil {
		in.ctx.Logger().Errorf("%s: %v", name, err)
		return nil, failWith(FunctionFailed, c, name, err)
	}
	if v == nil {
		return runtime.Null{}, nil
	}
	return v, nil
}

// arguments evaluates call arguments in the frame of the caller.
func (in *Interpreter) arguments(c *syntax.Call) (arguments, error) {
	args := arguments{named: make(map[string]runtime.Value), positional: runtime.Array{}}
	for _, a := range c.Args {
		v, err := in.eval(a)
		if err != nil {
			return args, err
		}
		v = runtime.Clone(v)
		if named, ok := a.(*syntax.NamedArg); ok {
			n := named.Name.Lexeme
			if _, seen := args.named[n]; !seen {
				args.order = append(args.order, n)
			}
			args.named[n] = v
			continue
		}
		args.positional = append(args.positional, v)
	}
	return args, nil
}

func (in *Interpreter) callScript(c *syntax.Call, decl *syntax.FunctionDecl) (runtime.Value, error) {
	for _, p := range decl.Params {
		if _, ok := in.reg.Argument(p.Lexeme); !ok {
			in.reg.Declare(p.Lexeme, runtime.Null{})
		}
	}
	_, err := in.eval(decl.Body)
	switch sig := err.(type) {
	case nil:
		return runtime.Null{}, nil
	case returnSignal:
		return sig.value, nil
	case breakSignal, continueSignal:
		return nil, fail(InvalidControlFlow, c, "%v in function %s", sig, decl.Name.Lexeme)
	}
	return nil, err
}
