package interpreter

import (
	"github.com/npillmayer/nasl/runtime"
	"github.com/npillmayer/nasl/syntax"
)

// MaxArrayIndex is the largest index an element assignment may grow an
// array to.
const MaxArrayIndex = 1<<20 - 1

// compound maps compound assignment operators onto their binary operators.
var compound = map[syntax.Category]syntax.Category{
	syntax.PlusEqual:                  syntax.Plus,
	syntax.MinusEqual:                 syntax.Minus,
	syntax.StarEqual:                  syntax.Star,
	syntax.SlashEqual:                 syntax.Slash,
	syntax.PercentEqual:               syntax.Percent,
	syntax.LessLessEqual:              syntax.LessLess,
	syntax.GreaterGreaterEqual:        syntax.GreaterGreater,
	syntax.GreaterGreaterGreaterEqual: syntax.GreaterGreaterGreater,
}

// slot is the resolved target of an assignment. The index is evaluated once,
// even if the slot is read and written.
type slot struct {
	stmt  syntax.Statement
	name  string
	index runtime.Value // nil for plain variables
}

func (in *Interpreter) assign(a *syntax.Assign) (runtime.Value, error) {
	s, err := in.slot(a.Target)
	if err != nil {
		return nil, err
	}
	if a.Category == syntax.Equal {
		v, err := in.eval(a.Value)
		if err != nil {
			return nil, err
		}
		v = runtime.Clone(v)
		old, err := in.store(s, v)
		if err != nil {
			return nil, err
		}
		return ordered(a.Order, old, v), nil
	}
	old, err := in.load(s)
	if err != nil {
		return nil, err
	}
	var v runtime.Value
	switch a.Category {
	case syntax.PlusPlus, syntax.MinusMinus:
		n, ok := numeric(old)
		if !ok {
			return nil, fail(TypeMismatch, a, "%s %s", a.Category, runtime.Inspect(old))
		}
		if a.Category == syntax.PlusPlus {
			v = runtime.Number(n + 1)
		} else {
			v = runtime.Number(n - 1)
		}
	default:
		op, ok := compound[a.Category]
		if !ok {
			return nil, fail(TypeMismatch, a, "unsupported assignment %s", a.Category)
		}
		right, err := in.eval(a.Value)
		if err != nil {
			return nil, err
		}
		if v, err = in.binary(a, op, old, right); err != nil {
			return nil, err
		}
	}
	if _, err = in.store(s, v); err != nil {
		return nil, err
	}
	return ordered(a.Order, old, v), nil
}

func ordered(order syntax.AssignOrder, old, v runtime.Value) runtime.Value {
	if order == syntax.ReturnAssign {
		return old
	}
	return v
}

func (in *Interpreter) slot(target syntax.Statement) (slot, error) {
	switch t := target.(type) {
	case *syntax.Variable:
		return slot{stmt: t, name: t.Token.Lexeme}, nil
	case *syntax.Array:
		s := slot{stmt: t, name: t.Token.Lexeme}
		if t.Index == nil {
			return s, nil
		}
		index, err := in.eval(t.Index)
		if err != nil {
			return s, err
		}
		s.index = index
		return s, nil
	}
	return slot{}, fail(TypeMismatch, target, "cannot assign to %s", target)
}

// load reads the current value of a slot. The variable must exist.
func (in *Interpreter) load(s slot) (runtime.Value, error) {
	v, err := in.variable(&syntax.Variable{Token: tokenOf(s.stmt)})
	if err != nil {
		return nil, err
	}
	if s.index == nil {
		return v, nil
	}
	return in.index(s.stmt, v, s.index)
}

// store writes a value into a slot and returns the value it replaces.
func (in *Interpreter) store(s slot, v runtime.Value) (runtime.Value, error) {
	if s.index == nil {
		return in.reg.AssignOrDeclare(s.name, v), nil
	}
	var container runtime.Value = runtime.Null{}
	if tag, ok := in.reg.Lookup(s.name); ok {
		if container, ok = tag.Value(); !ok {
			return nil, fail(TypeMismatch, s.stmt, "%s is a function", s.name)
		}
	}
	updated, old, err := writeElement(s.stmt, container, s.index, v)
	if err != nil {
		return nil, err
	}
	in.reg.AssignOrDeclare(s.name, updated)
	return old, nil
}

// writeElement sets container[index] = v. A Null container becomes an Array
// for numeric indices and a Dict otherwise. Arrays grow as needed, with Null
// padding.
func writeElement(stmt syntax.Statement, container, index, v runtime.Value) (runtime.Value, runtime.Value, error) {
	if _, isNull := container.(runtime.Null); isNull {
		if _, isString := index.(runtime.String); isString {
			container = runtime.NewDict()
		} else {
			container = runtime.Array{}
		}
	}
	switch c := container.(type) {
	case runtime.Array:
		i, err := arrayIndex(stmt, index)
		if err != nil {
			return nil, nil, err
		}
		if i > MaxArrayIndex {
			return nil, nil, fail(IndexOutOfRange, stmt, "index %d exceeds maximum %d", i, MaxArrayIndex)
		}
		if i >= len(c) {
			grown := make(runtime.Array, i+1)
			copy(grown, c)
			for j := len(c); j < len(grown); j++ {
				grown[j] = runtime.Null{}
			}
			c = grown
		}
		old := c[i]
		c[i] = v
		return c, old, nil
	case *runtime.Dict:
		old, ok := c.Get(index.String())
		if !ok {
			old = runtime.Null{}
		}
		c.Put(index.String(), v)
		return c, old, nil
	}
	return nil, nil, fail(NotAnArray, stmt, "cannot index %s", container.Type())
}

func tokenOf(stmt syntax.Statement) syntax.Token {
	switch t := stmt.(type) {
	case *syntax.Variable:
		return t.Token
	case *syntax.Array:
		return t.Token
	}
	return syntax.Token{}
}
