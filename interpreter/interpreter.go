package interpreter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/nasl/runtime"
	"github.com/npillmayer/nasl/syntax"
)

// DefaultMaxCallDepth limits nested function calls.
const DefaultMaxCallDepth = 256

// Interpreter evaluates statements against a register and a context.
type Interpreter struct {
	MaxCallDepth int // defaults to DefaultMaxCallDepth

	reg      *runtime.Register
	ctx      *runtime.Context
	regexps  map[string]*regexp.Regexp
	includes []string // names of the scripts being included, innermost last
}

// New creates an interpreter. reg holds the variables of the script and is
// modified by evaluation.
func New(reg *runtime.Register, ctx *runtime.Context) *Interpreter {
	return &Interpreter{
		MaxCallDepth: DefaultMaxCallDepth,
		reg:          reg,
		ctx:          ctx,
		regexps:      make(map[string]*regexp.Regexp),
	}
}

// Register returns the register of the interpreter.
func (in *Interpreter) Register() *runtime.Register {
	return in.reg
}

// Context returns the context of the interpreter.
func (in *Interpreter) Context() *runtime.Context {
	return in.ctx
}

// Resolve evaluates a top-level statement.
//
// exit() yields a runtime.Exit value. return yields the returned value.
// break and continue outside of loops are InvalidControlFlow errors.
func (in *Interpreter) Resolve(stmt syntax.Statement) (runtime.Value, error) {
	v, err := in.eval(stmt)
	switch sig := err.(type) {
	case nil:
		return v, nil
	case exitSignal:
		return runtime.Exit(sig.code), nil
	case returnSignal:
		return sig.value, nil
	case breakSignal, continueSignal:
		return nil, fail(InvalidControlFlow, stmt, "%v", sig)
	}
	return nil, err
}

// eval dispatches on the kind of statement. Control flow is returned as
// signal errors.
func (in *Interpreter) eval(stmt syntax.Statement) (runtime.Value, error) {
	switch s := stmt.(type) {
	case *syntax.Primitive:
		return in.primitive(s)
	case *syntax.Variable:
		return in.variable(s)
	case *syntax.Array:
		return in.element(s)
	case *syntax.Operator:
		return in.operator(s)
	case *syntax.Assign:
		return in.assign(s)
	case *syntax.NoOp:
		return runtime.Null{}, nil
	case *syntax.Call:
		return in.call(s)
	case *syntax.NamedArg:
		return in.eval(s.Value)
	case *syntax.ArrayLiteral:
		return in.arrayLiteral(s)
	case *syntax.Block:
		return in.block(s)
	case *syntax.If:
		return in.ifStatement(s)
	case *syntax.For:
		return in.forLoop(s)
	case *syntax.ForEach:
		return in.forEachLoop(s)
	case *syntax.While:
		return in.whileLoop(s)
	case *syntax.Repeat:
		return in.repeatLoop(s)
	case *syntax.FunctionDecl:
		return in.declareFunction(s)
	case *syntax.Declare:
		return in.declare(s)
	case *syntax.Return:
		return in.returnStatement(s)
	case *syntax.Include:
		return in.include(s)
	case *syntax.Exit:
		return in.exit(s)
	case *syntax.Jump:
		if s.Keyword == syntax.KwBreak {
			return nil, breakSignal{}
		}
		return nil, continueSignal{}
	}
	return nil, fmt.Errorf("unknown statement type %T", stmt)
}

// --- Primitives and variables ----------------------------------------------

func (in *Interpreter) primitive(p *syntax.Primitive) (runtime.Value, error) {
	t := p.Token
	switch t.Category {
	case syntax.Number:
		return parseNumber(p)
	case syntax.String:
		if t.Quoting == syntax.Quotable {
			return runtime.String(unescape(t.Lexeme)), nil
		}
		return runtime.String(t.Lexeme), nil
	case syntax.IPv4Address:
		return runtime.String(t.Lexeme), nil
	}
	switch t.Keyword {
	case syntax.KwTrue:
		return runtime.Boolean(true), nil
	case syntax.KwFalse:
		return runtime.Boolean(false), nil
	}
	return runtime.Null{}, nil
}

func parseNumber(p *syntax.Primitive) (runtime.Value, error) {
	digits := p.Token.Lexeme
	switch p.Token.Base {
	case syntax.Base16, syntax.Base2:
		digits = digits[2:]
	}
	n, err := strconv.ParseUint(digits, p.Token.Base.Radix(), 64)
	if err != nil {
		return nil, failWith(TypeMismatch, p, "invalid number "+p.Token.Lexeme, err)
	}
	return runtime.Number(int64(n)), nil
}

// unescape resolves backslash escapes of single-quoted strings. Unknown
// escapes are kept as they are.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\', '\'', '"':
			b.WriteByte(s[i])
		case 'x':
			if i+2 < len(s) {
				if h, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
					b.WriteByte(byte(h))
					i += 2
					continue
				}
			}
			b.WriteString(`\x`)
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func (in *Interpreter) variable(v *syntax.Variable) (runtime.Value, error) {
	name := v.Token.Lexeme
	tag, ok := in.reg.Lookup(name)
	if !ok {
		return nil, fail(UndeclaredVariable, v, "%s", name)
	}
	val, ok := tag.Value()
	if !ok {
		return nil, fail(TypeMismatch, v, "%s is a function", name)
	}
	return val, nil
}

// element reads a[i]. Missing keys of dictionaries read as Null.
func (in *Interpreter) element(a *syntax.Array) (runtime.Value, error) {
	container, err := in.variable(&syntax.Variable{Token: a.Token})
	if err != nil {
		return nil, err
	}
	if a.Index == nil {
		return container, nil
	}
	index, err := in.eval(a.Index)
	if err != nil {
		return nil, err
	}
	return in.index(a, container, index)
}

func (in *Interpreter) index(stmt syntax.Statement, container, index runtime.Value) (runtime.Value, error) {
	switch c := container.(type) {
	case runtime.Array:
		i, err := arrayIndex(stmt, index)
		if err != nil {
			return nil, err
		}
		if i >= len(c) {
			return nil, fail(IndexOutOfRange, stmt, "index %d, length %d", i, len(c))
		}
		return c[i], nil
	case *runtime.Dict:
		if v, ok := c.Get(index.String()); ok {
			return v, nil
		}
		return runtime.Null{}, nil
	case runtime.String:
		i, err := arrayIndex(stmt, index)
		if err != nil {
			return nil, err
		}
		if i >= len(c) {
			return nil, fail(IndexOutOfRange, stmt, "index %d, length %d", i, len(c))
		}
		return c[i : i+1], nil
	}
	return nil, fail(NotAnArray, stmt, "cannot index %s", container.Type())
}

func arrayIndex(stmt syntax.Statement, index runtime.Value) (int, error) {
	switch index.(type) {
	case runtime.Number, runtime.Boolean:
		n, _ := runtime.AsNumber(index)
		if n < 0 {
			return 0, fail(IndexOutOfRange, stmt, "negative index %d", n)
		}
		if int64(int(n)) != n {
			return 0, fail(IndexOutOfRange, stmt, "index %d too large", n)
		}
		return int(n), nil
	}
	return 0, fail(TypeMismatch, stmt, "index must be a number, is %s", runtime.Inspect(index))
}

func (in *Interpreter) arrayLiteral(a *syntax.ArrayLiteral) (runtime.Value, error) {
	arr := make(runtime.Array, 0, len(a.Elements))
	for _, e := range a.Elements {
		v, err := in.eval(e)
		if err != nil {
			return nil, err
		}
		arr = append(arr, runtime.Clone(v))
	}
	return arr, nil
}

func (in *Interpreter) block(b *syntax.Block) (runtime.Value, error) {
	for _, stmt := range b.Statements {
		if _, err := in.eval(stmt); err != nil {
			return nil, err
		}
	}
	return runtime.Null{}, nil
}
