package syntax

// grouping parses parenthesized expressions, array literals and blocks.
func (p *Parser) grouping(token Token) (prefixState, Statement, error) {
	switch token.Category {
	case LeftParen:
		inner, err := p.expression("parsing parenthesis")
		if err != nil {
			return goOn, nil, err
		}
		if _, err = p.expectCategory(RightParen, "parsing parenthesis"); err != nil {
			return goOn, nil, err
		}
		return goOn, inner, nil
	case LeftBrace:
		elems, err := p.list(RightBrace, "parsing array literal")
		if err != nil {
			return goOn, nil, err
		}
		return goOn, &ArrayLiteral{Token: token, Elements: elems}, nil
	}
	block, err := p.block()
	if err != nil {
		return goOn, nil, err
	}
	return breakOn(RightCurlyBracket), block, nil
}

// list parses comma separated expressions up to and including the closing
// category.
func (p *Parser) list(closing Category, context string) ([]Statement, error) {
	elems := []Statement{}
	t, err := p.significant()
	if err != nil {
		return nil, err
	}
	if t.Category == closing {
		p.consume()
		return elems, nil
	}
	for {
		elem, err := p.expression(context)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		sep, err := p.expect(context)
		if err != nil {
			return nil, err
		}
		switch sep.Category {
		case Comma:
			continue
		case closing:
			return elems, nil
		}
		return nil, unexpectedTokenWhile(sep, context)
	}
}

// block parses statements up to the closing curly bracket. The opening
// bracket has already been consumed.
func (p *Parser) block() (*Block, error) {
	const context = "parsing block"
	block := &Block{Statements: []Statement{}}
	for {
		t, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch t.Category {
		case EOF:
			return nil, unexpectedEnd(context)
		case RightCurlyBracket:
			p.consume()
			return block, nil
		case Comment:
			p.consume()
			block.Statements = append(block.Statements, &NoOp{Token: &t})
			continue
		}
		mark := len(p.pending)
		end, stmt, err := p.statement(0, never)
		if err != nil {
			return nil, err
		}
		if err = p.terminated(end, context); err != nil {
			return nil, err
		}
		// comments met inside the statement stay in the block
		block.Statements = append(block.Statements, stmt)
		block.Statements = append(block.Statements, p.pending[mark:]...)
		p.pending = p.pending[:mark]
	}
}
