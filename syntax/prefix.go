package syntax

// prefixKind tells the statement loop how to proceed after a prefix
// statement.
type prefixKind int8

const (
	prefixContinue prefixKind = iota // go on with postfix and infix operators
	prefixOpenEnd                    // a comment; retain it and read on
	prefixBreak                      // the statement is complete
)

type prefixState struct {
	kind     prefixKind
	category Category // for prefixBreak
}

var goOn = prefixState{kind: prefixContinue}

func breakOn(c Category) prefixState {
	return prefixState{kind: prefixBreak, category: c}
}

// asPrefix translates the end of a nested statement into a prefix state.
func asPrefix(end End) prefixState {
	if end.Kind == Done {
		return breakOn(end.Category)
	}
	return goOn
}

// prefixBindingPower returns the binding power of unary operators.
func prefixBindingPower(token Token) (int, error) {
	switch token.Category {
	case Plus, Minus, Tilde, Bang:
		return 21, nil
	}
	return 0, unexpectedTokenWhile(token, "expecting a unary operator")
}

// prefixStatement parses the start of a statement, i.e. everything up to the
// first postfix or infix operator.
func (p *Parser) prefixStatement(token Token, abort abortFunc) (prefixState, Statement, error) {
	op, err := Classify(token)
	if err != nil {
		return goOn, nil, err
	}
	switch op.Kind {
	case OpOperator:
		bp, err := prefixBindingPower(token)
		if err != nil {
			return goOn, nil, err
		}
		end, right, err := p.operand(bp, abort)
		if err != nil {
			return goOn, nil, err
		}
		return asPrefix(end), &Operator{Category: op.Category, Operands: []Statement{right}}, nil
	case OpPrimitive:
		return goOn, &Primitive{Token: token}, nil
	case OpVariable:
		stmt, err := p.variable(token)
		return goOn, stmt, err
	case OpGrouping:
		return p.grouping(token)
	case OpAssign:
		if op.Category == PlusPlus || op.Category == MinusMinus {
			stmt, err := p.prefixAssign(token)
			return goOn, stmt, err
		}
		return goOn, nil, unexpectedTokenWhile(token, "assignment without target")
	case OpKeyword:
		return p.keyword(token)
	}
	// OpNoOp
	if token.Category == Comment {
		return prefixState{kind: prefixOpenEnd}, &NoOp{Token: &token}, nil
	}
	return breakOn(token.Category), &NoOp{Token: &token}, nil
}

// prefixAssign parses ++x and --x. The target has to be a variable or an
// array element.
func (p *Parser) prefixAssign(op Token) (Statement, error) {
	next, err := p.expect("parsing prefix statement")
	if err != nil {
		return nil, err
	}
	if next.Category != Identifier || (next.Keyword != NoKeyword && next.Keyword != KwFCTAnonArgs) {
		return nil, unexpectedTokenWhile(next, "increment needs a variable")
	}
	target, err := p.variable(next)
	if err != nil {
		return nil, err
	}
	if !assignable(target) {
		return nil, unexpectedTokenWhile(op, "increment needs a variable")
	}
	return &Assign{
		Category: op.Category,
		Order:    AssignReturn,
		Target:   target,
		Value:    &NoOp{},
	}, nil
}

// assignable is true for variables and array elements.
func assignable(stmt Statement) bool {
	switch stmt.(type) {
	case *Variable, *Array:
		return true
	}
	return false
}
