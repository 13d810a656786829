package interpreter

import (
	"regexp"
	"strings"

	"github.com/npillmayer/nasl/runtime"
	"github.com/npillmayer/nasl/syntax"
)

func (in *Interpreter) operator(op *syntax.Operator) (runtime.Value, error) {
	if len(op.Operands) == 1 {
		v, err := in.eval(op.Operands[0])
		if err != nil {
			return nil, err
		}
		return unary(op, v)
	}
	left, err := in.eval(op.Operands[0])
	if err != nil {
		return nil, err
	}
	switch op.Category {
	case syntax.AmpersandAmpersand:
		if !runtime.Truthy(left) {
			return runtime.Boolean(false), nil
		}
	case syntax.PipePipe:
		if runtime.Truthy(left) {
			return runtime.Boolean(true), nil
		}
	}
	right, err := in.eval(op.Operands[1])
	if err != nil {
		return nil, err
	}
	return in.binary(op, op.Category, left, right)
}

func unary(op *syntax.Operator, v runtime.Value) (runtime.Value, error) {
	if op.Category == syntax.Bang {
		return runtime.Boolean(!runtime.Truthy(v)), nil
	}
	n, ok := numeric(v)
	if !ok {
		return nil, fail(TypeMismatch, op, "%s %s", op.Category, runtime.Inspect(v))
	}
	switch op.Category {
	case syntax.Minus:
		return runtime.Number(-n), nil
	case syntax.Tilde:
		return runtime.Number(^n), nil
	}
	return runtime.Number(n), nil
}

// numeric reads numbers, booleans and Null as numbers. Strings do not
// count.
func numeric(v runtime.Value) (int64, bool) {
	switch v.(type) {
	case runtime.Number, runtime.Boolean, runtime.Null:
		return runtime.AsNumber(v)
	}
	return 0, false
}

// binary applies a binary operator. It is shared by operators and compound
// assignments.
func (in *Interpreter) binary(stmt syntax.Statement, cat syntax.Category, left, right runtime.Value) (runtime.Value, error) {
	switch cat {
	case syntax.AmpersandAmpersand:
		return runtime.Boolean(runtime.Truthy(left) && runtime.Truthy(right)), nil
	case syntax.PipePipe:
		return runtime.Boolean(runtime.Truthy(left) || runtime.Truthy(right)), nil
	case syntax.EqualEqual:
		return runtime.Boolean(looselyEqual(left, right)), nil
	case syntax.BangEqual:
		return runtime.Boolean(!looselyEqual(left, right)), nil
	case syntax.GreaterLess:
		return runtime.Boolean(strings.Contains(right.String(), left.String())), nil
	case syntax.GreaterBangLess:
		return runtime.Boolean(!strings.Contains(right.String(), left.String())), nil
	case syntax.EqualTilde, syntax.BangTilde:
		re, err := in.compileRegexp(stmt, right)
		if err != nil {
			return nil, err
		}
		matches := re.MatchString(left.String())
		return runtime.Boolean(matches == (cat == syntax.EqualTilde)), nil
	case syntax.Less, syntax.LessEqual, syntax.Greater, syntax.GreaterEqual:
		return compare(stmt, cat, left, right)
	}
	ls, lstr := left.(runtime.String)
	rs, rstr := right.(runtime.String)
	if cat == syntax.Plus && (lstr || rstr) {
		return runtime.String(left.String() + right.String()), nil
	}
	if cat == syntax.Minus && lstr && rstr {
		return runtime.String(strings.Replace(string(ls), string(rs), "", 1)), nil
	}
	a, aok := numeric(left)
	b, bok := numeric(right)
	if !aok || !bok {
		return nil, fail(TypeMismatch, stmt, "%s %s %s", runtime.Inspect(left), cat, runtime.Inspect(right))
	}
	return arithmetic(stmt, cat, a, b)
}

func arithmetic(stmt syntax.Statement, cat syntax.Category, a, b int64) (runtime.Value, error) {
	switch cat {
	case syntax.Plus:
		return runtime.Number(a + b), nil
	case syntax.Minus:
		return runtime.Number(a - b), nil
	case syntax.Star:
		return runtime.Number(a * b), nil
	case syntax.Slash, syntax.Percent:
		if b == 0 {
			return nil, fail(DivisionByZero, stmt, "%d %s 0", a, cat)
		}
		if cat == syntax.Slash {
			return runtime.Number(a / b), nil
		}
		return runtime.Number(a % b), nil
	case syntax.StarStar:
		return runtime.Number(power(a, b)), nil
	case syntax.Ampersand:
		return runtime.Number(a & b), nil
	case syntax.Pipe:
		return runtime.Number(a | b), nil
	case syntax.Caret:
		return runtime.Number(a ^ b), nil
	}
	if b < 0 {
		return nil, fail(TypeMismatch, stmt, "negative shift count %d", b)
	}
	switch cat {
	case syntax.LessLess:
		return runtime.Number(a << uint64(b)), nil
	case syntax.GreaterGreater:
		return runtime.Number(a >> uint64(b)), nil
	case syntax.GreaterGreaterGreater:
		return runtime.Number(int64(uint64(a) >> uint64(b))), nil
	}
	return nil, fail(TypeMismatch, stmt, "unsupported operator %s", cat)
}

// power computes integer powers. Negative exponents truncate to 0, except
// for bases 1 and -1.
func power(base, exp int64) int64 {
	if exp < 0 {
		switch base {
		case 1:
			return 1
		case -1:
			if exp%2 == 0 {
				return 1
			}
			return -1
		}
		return 0
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// looselyEqual compares values of equal type structurally. Values of
// different types are equal if their numeric or textual readings are.
func looselyEqual(a, b runtime.Value) bool {
	if a.Type() == b.Type() {
		return runtime.Equal(a, b)
	}
	if x, ok := runtime.AsNumber(a); ok {
		if y, ok := runtime.AsNumber(b); ok {
			return x == y
		}
	}
	return a.String() == b.String()
}

func compare(stmt syntax.Statement, cat syntax.Category, left, right runtime.Value) (runtime.Value, error) {
	var c int
	ls, lstr := left.(runtime.String)
	rs, rstr := right.(runtime.String)
	if lstr && rstr {
		c = strings.Compare(string(ls), string(rs))
	} else {
		a, aok := runtime.AsNumber(left)
		b, bok := runtime.AsNumber(right)
		if !aok || !bok {
			return nil, fail(TypeMismatch, stmt, "%s %s %s", runtime.Inspect(left), cat, runtime.Inspect(right))
		}
		switch {
		case a < b:
			c = -1
		case a > b:
			c = 1
		}
	}
	switch cat {
	case syntax.Less:
		return runtime.Boolean(c < 0), nil
	case syntax.LessEqual:
		return runtime.Boolean(c <= 0), nil
	case syntax.Greater:
		return runtime.Boolean(c > 0), nil
	}
	return runtime.Boolean(c >= 0), nil
}

// compileRegexp compiles a pattern once per interpreter.
func (in *Interpreter) compileRegexp(stmt syntax.Statement, pattern runtime.Value) (*regexp.Regexp, error) {
	p := pattern.String()
	if re, ok := in.regexps[p]; ok {
		return re, nil
	}
	re, err := regexp.Compile(p)
	if err != nil {
		return nil, failWith(TypeMismatch, stmt, "invalid regular expression", err)
	}
	in.regexps[p] = re
	return re, nil
}
