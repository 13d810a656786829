package interpreter

import (
	"github.com/npillmayer/nasl/runtime"
	"github.com/npillmayer/nasl/syntax"
)

func (in *Interpreter) ifStatement(s *syntax.If) (runtime.Value, error) {
	c, err := in.eval(s.Condition)
	if err != nil {
		return nil, err
	}
	if runtime.Truthy(c) {
		_, err = in.eval(s.Then)
	} else if s.Else != nil {
		_, err = in.eval(s.Else)
	}
	if err != nil {
		return nil, err
	}
	return runtime.Null{}, nil
}

// iterate evaluates a loop body once. It reports whether the loop has to
// stop, either because of break or because of an error.
func (in *Interpreter) iterate(body syntax.Statement) (bool, error) {
	_, err := in.eval(body)
	switch err.(type) {
	case nil, continueSignal:
		return false, nil
	case breakSignal:
		return true, nil
	}
	return true, err
}

// holds evaluates a loop condition. An empty condition always holds.
func (in *Interpreter) holds(cond syntax.Statement) (bool, error) {
	if _, empty := cond.(*syntax.NoOp); empty {
		return true, nil
	}
	c, err := in.eval(cond)
	if err != nil {
		return false, err
	}
	return runtime.Truthy(c), nil
}

func (in *Interpreter) forLoop(s *syntax.For) (runtime.Value, error) {
	if _, err := in.eval(s.Init); err != nil {
		return nil, err
	}
	for {
		ok, err := in.holds(s.Condition)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if stop, err := in.iterate(s.Body); stop {
			if err != nil {
				return nil, err
			}
			break
		}
		if _, err = in.eval(s.Update); err != nil {
			return nil, err
		}
	}
	return runtime.Null{}, nil
}

func (in *Interpreter) whileLoop(s *syntax.While) (runtime.Value, error) {
	for {
		ok, err := in.holds(s.Condition)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if stop, err := in.iterate(s.Body); stop {
			if err != nil {
				return nil, err
			}
			break
		}
	}
	return runtime.Null{}, nil
}

// repeatLoop runs the body at least once, until the condition holds.
func (in *Interpreter) repeatLoop(s *syntax.Repeat) (runtime.Value, error) {
	for {
		if stop, err := in.iterate(s.Body); stop {
			if err != nil {
				return nil, err
			}
			break
		}
		c, err := in.eval(s.Condition)
		if err != nil {
			return nil, err
		}
		if runtime.Truthy(c) {
			break
		}
	}
	return runtime.Null{}, nil
}

// forEachLoop iterates over array elements, or over the values of a
// dictionary in key order. NULL is an empty collection.
func (in *Interpreter) forEachLoop(s *syntax.ForEach) (runtime.Value, error) {
	it, err := in.eval(s.Iterable)
	if err != nil {
		return nil, err
	}
	var elements []runtime.Value
	switch c := it.(type) {
	case runtime.Array:
		elements = append([]runtime.Value(nil), c...)
	case *runtime.Dict:
		elements = c.Values()
	case runtime.Null:
	default:
		return nil, fail(TypeMismatch, s, "cannot iterate over %s", it.Type())
	}
	name := s.Variable.Lexeme
	for _, e := range elements {
		in.reg.AssignOrDeclare(name, runtime.Clone(e))
		if stop, err := in.iterate(s.Body); stop {
			if err != nil {
				return nil, err
			}
			break
		}
	}
	return runtime.Null{}, nil
}
