package syntax

// infixBindingPower returns the left and right binding powers of a binary
// operator. Right associative operators have l > r or l == r.
func infixBindingPower(c Category) (l int, r int, ok bool) {
	switch c {
	case Equal, PlusEqual, MinusEqual, StarEqual, SlashEqual, PercentEqual,
		LessLessEqual, GreaterGreaterEqual, GreaterGreaterGreaterEqual:
		return 2, 1, true
	case PipePipe:
		return 3, 4, true
	case AmpersandAmpersand:
		return 5, 6, true
	case EqualEqual, BangEqual, Greater, Less, GreaterEqual, LessEqual,
		EqualTilde, BangTilde, GreaterLess, GreaterBangLess:
		return 7, 8, true
	case Pipe:
		return 9, 10, true
	case Caret:
		return 11, 12, true
	case Ampersand:
		return 13, 14, true
	case LessLess, GreaterGreater, GreaterGreaterGreater:
		return 15, 16, true
	case Plus, Minus:
		return 17, 18, true
	case Star, Slash, Percent:
		return 19, 20, true
	case StarStar:
		return 20, 20, true
	}
	return 0, 0, false
}

const postfixBindingPower = 22

// infixStatement folds postfix and infix operators onto left, as long as
// they bind at least with minBP.
func (p *Parser) infixStatement(minBP int, left Statement, abort abortFunc) (End, Statement, error) {
	for {
		t, err := p.significant()
		if err != nil {
			return open, nil, err
		}
		if t.Category == EOF {
			return open, left, nil
		}
		op, err := Classify(t)
		if err != nil {
			return open, nil, err
		}
		switch op.Kind {
		case OpNoOp:
			if t.Category == Semicolon {
				p.consume()
				return done(Semicolon), left, nil
			}
			return open, left, nil // closing bracket, comma or colon
		case OpAssign:
			if t.Category == PlusPlus || t.Category == MinusMinus {
				if postfixBindingPower < minBP {
					return open, left, nil
				}
				if !assignable(left) {
					return open, nil, unexpectedTokenWhile(t, "increment needs a variable")
				}
				p.consume()
				left = &Assign{Category: t.Category, Order: ReturnAssign, Target: left, Value: &NoOp{}}
				continue
			}
			fallthrough
		case OpOperator:
			l, r, ok := infixBindingPower(t.Category)
			if !ok {
				return open, nil, unexpectedTokenWhile(t, "expecting a binary operator")
			}
			if l < minBP {
				return open, left, nil
			}
			if op.Kind == OpAssign && !assignable(left) {
				return open, nil, unexpectedTokenWhile(t, "assignment needs a variable")
			}
			p.consume()
			end, right, err := p.operand(r, abort)
			if err != nil {
				return open, nil, err
			}
			if op.Kind == OpAssign {
				left = &Assign{Category: t.Category, Order: AssignReturn, Target: left, Value: right}
			} else {
				left = &Operator{Category: t.Category, Operands: []Statement{left, right}}
			}
			if end.Kind == Done {
				return end, left, nil
			}
		default:
			return open, nil, unexpectedTokenWhile(t, "expecting an operator")
		}
	}
}
