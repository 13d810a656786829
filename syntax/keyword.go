package syntax

// keyword parses statements introduced by a keyword.
func (p *Parser) keyword(token Token) (prefixState, Statement, error) {
	switch token.Keyword {
	case KwNull, KwTrue, KwFalse:
		return goOn, &Primitive{Token: token}, nil
	case KwFCTAnonArgs:
		stmt, err := p.variable(token)
		return goOn, stmt, err
	case KwIf:
		return p.ifStatement()
	case KwFor:
		return p.forStatement()
	case KwForEach:
		return p.forEachStatement()
	case KwWhile:
		return p.whileStatement()
	case KwRepeat:
		return p.repeatStatement()
	case KwFunction:
		return p.functionDeclaration()
	case KwLocalVar, KwGlobalVar:
		return p.declaration(token.Keyword)
	case KwReturn:
		return p.returnStatement()
	case KwInclude:
		return p.includeStatement()
	case KwExit:
		return p.exitStatement()
	case KwBreak, KwContinue:
		if _, err := p.expectCategory(Semicolon, "parsing "+token.Lexeme); err != nil {
			return goOn, nil, err
		}
		return breakOn(Semicolon), &Jump{Keyword: token.Keyword}, nil
	}
	// else, until
	return goOn, nil, unexpectedToken(token)
}

// semicolon checks that a statement ended with ';'.
func (p *Parser) semicolon(end End, context string) error {
	if end == done(Semicolon) {
		return nil
	}
	if end.Kind == Done {
		return unexpectedTokenWhile(p.last, context)
	}
	return p.terminated(end, context)
}

// condition parses '(' expression ')'.
func (p *Parser) condition(context string) (Statement, error) {
	if _, err := p.expectCategory(LeftParen, context); err != nil {
		return nil, err
	}
	cond, err := p.expression(context)
	if err != nil {
		return nil, err
	}
	if _, err = p.expectCategory(RightParen, context); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *Parser) ifStatement() (prefixState, Statement, error) {
	const context = "parsing if"
	cond, err := p.condition(context)
	if err != nil {
		return goOn, nil, err
	}
	end, then, err := p.body(context)
	if err != nil {
		return goOn, nil, err
	}
	stmt := &If{Condition: cond, Then: then}
	t, err := p.significant()
	if err != nil {
		return goOn, nil, err
	}
	if t.IsKeyword(KwElse) {
		p.consume()
		if end, stmt.Else, err = p.body(context); err != nil {
			return goOn, nil, err
		}
	}
	return asPrefix(end), stmt, nil
}

func (p *Parser) forStatement() (prefixState, Statement, error) {
	const context = "parsing for"
	if _, err := p.expectCategory(LeftParen, context); err != nil {
		return goOn, nil, err
	}
	end, initial, err := p.statement(0, never)
	if err != nil {
		return goOn, nil, err
	}
	if end != done(Semicolon) {
		return goOn, nil, unexpectedTokenWhile(p.last, context)
	}
	end, cond, err := p.statement(0, never)
	if err != nil {
		return goOn, nil, err
	}
	if end != done(Semicolon) {
		return goOn, nil, unexpectedTokenWhile(p.last, context)
	}
	var update Statement
	end, update, err = p.statement(0, on(RightParen))
	if err != nil {
		return goOn, nil, err
	}
	if end.Kind == Done {
		if end.Category != RightParen {
			return goOn, nil, unexpectedTokenWhile(p.last, context)
		}
		update = &NoOp{}
	} else if _, err = p.expectCategory(RightParen, context); err != nil {
		return goOn, nil, err
	}
	end, body, err := p.body(context)
	if err != nil {
		return goOn, nil, err
	}
	return asPrefix(end), &For{Init: initial, Condition: cond, Update: update, Body: body}, nil
}

func (p *Parser) forEachStatement() (prefixState, Statement, error) {
	const context = "parsing foreach"
	v, err := p.expectCategory(Identifier, context)
	if err != nil {
		return goOn, nil, err
	}
	if v.Keyword != NoKeyword {
		return goOn, nil, unexpectedTokenWhile(v, context)
	}
	iterable, err := p.condition(context)
	if err != nil {
		return goOn, nil, err
	}
	end, body, err := p.body(context)
	if err != nil {
		return goOn, nil, err
	}
	return asPrefix(end), &ForEach{Variable: v, Iterable: iterable, Body: body}, nil
}

func (p *Parser) whileStatement() (prefixState, Statement, error) {
	const context = "parsing while"
	cond, err := p.condition(context)
	if err != nil {
		return goOn, nil, err
	}
	end, body, err := p.body(context)
	if err != nil {
		return goOn, nil, err
	}
	return asPrefix(end), &While{Condition: cond, Body: body}, nil
}

func (p *Parser) repeatStatement() (prefixState, Statement, error) {
	const context = "parsing repeat"
	_, body, err := p.body(context)
	if err != nil {
		return goOn, nil, err
	}
	t, err := p.expect(context)
	if err != nil {
		return goOn, nil, err
	}
	if !t.IsKeyword(KwUntil) {
		return goOn, nil, unexpectedTokenWhile(t, context)
	}
	end, cond, err := p.operand(0, never)
	if err != nil {
		return goOn, nil, err
	}
	if err = p.semicolon(end, context); err != nil {
		return goOn, nil, err
	}
	return breakOn(Semicolon), &Repeat{Body: body, Condition: cond}, nil
}

func (p *Parser) functionDeclaration() (prefixState, Statement, error) {
	const context = "parsing function declaration"
	name, err := p.expectCategory(Identifier, context)
	if err != nil {
		return goOn, nil, err
	}
	if name.Keyword != NoKeyword {
		return goOn, nil, unexpectedTokenWhile(name, context)
	}
	if _, err = p.expectCategory(LeftParen, context); err != nil {
		return goOn, nil, err
	}
	params := []Token{}
	t, err := p.expect(context)
	for err == nil && t.Category != RightParen {
		if t.Category != Identifier || t.Keyword != NoKeyword {
			return goOn, nil, unexpectedTokenWhile(t, context)
		}
		params = append(params, t)
		if t, err = p.expect(context); err != nil {
			break
		}
		switch t.Category {
		case Comma:
			t, err = p.expect(context)
		case RightParen:
		default:
			return goOn, nil, unexpectedTokenWhile(t, context)
		}
	}
	if err != nil {
		return goOn, nil, err
	}
	if _, err = p.expectCategory(LeftCurlyBracket, context); err != nil {
		return goOn, nil, err
	}
	body, err := p.block()
	if err != nil {
		return goOn, nil, err
	}
	return breakOn(RightCurlyBracket), &FunctionDecl{Name: name, Params: params, Body: body}, nil
}

// declaration parses local_var and global_var. Targets are variables,
// optionally with an initial value.
func (p *Parser) declaration(kw Keyword) (prefixState, Statement, error) {
	const context = "parsing declaration"
	decl := &Declare{Keyword: kw}
	for {
		end, target, err := p.operand(0, never)
		if err != nil {
			return goOn, nil, err
		}
		switch t := target.(type) {
		case *Variable:
		case *Assign:
			if _, ok := t.Target.(*Variable); !ok || t.Category != Equal {
				return goOn, nil, unexpectedTokenWhile(p.last, context)
			}
		default:
			return goOn, nil, unexpectedTokenWhile(p.last, context)
		}
		decl.Targets = append(decl.Targets, target)
		if end == done(Semicolon) {
			return breakOn(Semicolon), decl, nil
		}
		if end.Kind == Done {
			return goOn, nil, unexpectedTokenWhile(p.last, context)
		}
		if _, err = p.expectCategory(Comma, context); err != nil {
			return goOn, nil, err
		}
	}
}

func (p *Parser) returnStatement() (prefixState, Statement, error) {
	const context = "parsing return"
	t, err := p.significant()
	if err != nil {
		return goOn, nil, err
	}
	if t.Category == Semicolon {
		p.consume()
		return breakOn(Semicolon), &Return{}, nil
	}
	end, value, err := p.operand(0, never)
	if err != nil {
		return goOn, nil, err
	}
	if err = p.semicolon(end, context); err != nil {
		return goOn, nil, err
	}
	return breakOn(Semicolon), &Return{Value: value}, nil
}

func (p *Parser) includeStatement() (prefixState, Statement, error) {
	const context = "parsing include"
	path, err := p.condition(context)
	if err != nil {
		return goOn, nil, err
	}
	if _, err = p.expectCategory(Semicolon, context); err != nil {
		return goOn, nil, err
	}
	return breakOn(Semicolon), &Include{Path: path}, nil
}

func (p *Parser) exitStatement() (prefixState, Statement, error) {
	const context = "parsing exit"
	if _, err := p.expectCategory(LeftParen, context); err != nil {
		return goOn, nil, err
	}
	stmt := &Exit{}
	t, err := p.significant()
	if err != nil {
		return goOn, nil, err
	}
	if t.Category != RightParen {
		if stmt.Code, err = p.expression(context); err != nil {
			return goOn, nil, err
		}
	}
	if _, err = p.expectCategory(RightParen, context); err != nil {
		return goOn, nil, err
	}
	if _, err = p.expectCategory(Semicolon, context); err != nil {
		return goOn, nil, err
	}
	return breakOn(Semicolon), stmt, nil
}
