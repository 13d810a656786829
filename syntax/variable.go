package syntax

// variable parses what follows an identifier: a call f(…), an array
// element a[…] or a plain variable.
func (p *Parser) variable(token Token) (Statement, error) {
	next, err := p.significant()
	if err != nil {
		return nil, err
	}
	switch next.Category {
	case LeftParen:
		p.consume()
		args, err := p.arguments()
		if err != nil {
			return nil, err
		}
		return &Call{Name: token, Args: args}, nil
	case LeftBrace:
		p.consume()
		index, err := p.expression("parsing array index")
		if err != nil {
			return nil, err
		}
		if _, err = p.expectCategory(RightBrace, "parsing array index"); err != nil {
			return nil, err
		}
		return &Array{Token: token, Index: index}, nil
	}
	return &Variable{Token: token}, nil
}

// arguments parses the argument list of a call, after the opening
// parenthesis. Arguments of the form name: value become named arguments.
func (p *Parser) arguments() ([]Statement, error) {
	const context = "parsing arguments"
	args := []Statement{}
	t, err := p.significant()
	if err != nil {
		return nil, err
	}
	if t.Category == RightParen {
		p.consume()
		return args, nil
	}
	for {
		arg, err := p.expression(context)
		if err != nil {
			return nil, err
		}
		sep, err := p.expect(context)
		if err != nil {
			return nil, err
		}
		if sep.Category == DoublePoint {
			name, ok := arg.(*Variable)
			if !ok {
				return nil, unexpectedTokenWhile(sep, context)
			}
			value, err := p.expression(context)
			if err != nil {
				return nil, err
			}
			arg = &NamedArg{Name: name.Token, Value: value}
			if sep, err = p.expect(context); err != nil {
				return nil, err
			}
		}
		args = append(args, arg)
		switch sep.Category {
		case Comma:
			continue
		case RightParen:
			return args, nil
		}
		return nil, unexpectedTokenWhile(sep, context)
	}
}
