package syntax

import (
	"errors"
	"io"
)

// DefaultMaxDepth is the default nesting limit for statements.
const DefaultMaxDepth = 256

// EndKind tells how a statement ended.
type EndKind int8

// Statement endings.
const (
	// Continue: the statement stopped in front of a token it does not handle
	// (a closing bracket, a comma, a colon or end of input). The token is not
	// consumed.
	Continue EndKind = iota
	// Done: the statement consumed its terminator, a ';' or the '}' of a
	// block.
	Done
)

// End is the end signal of a statement. Category is set for Done.
type End struct {
	Kind     EndKind
	Category Category
}

func done(c Category) End {
	return End{Kind: Done, Category: c}
}

var open = End{Kind: Continue}

func (e End) String() string {
	if e.Kind == Done {
		return "Done(" + e.Category.String() + ")"
	}
	return "Continue"
}

// abortFunc lets a caller end a statement early on its first token.
type abortFunc func(Category) bool

func never(Category) bool { return false }

func on(c Category) abortFunc {
	return func(cat Category) bool { return cat == c }
}

// Parser produces the top-level statements of a script, one per call to
// Next. It is restartable: after Restart it delivers the same sequence of
// statements again.
type Parser struct {
	MaxDepth int // maximum nesting of statements, defaults to DefaultMaxDepth

	tokens   *Tokenizer
	ahead    Token // one token of lookahead
	hasAhead bool
	last     Token       // last consumed token
	pending  []Statement // comments found inside the current statement
	depth    int
	braces   int   // curly brackets opened and not yet closed in the current statement
	fatal    error // lexical error, ends parsing
	failed   bool
}

// Parse creates a parser for a script. No input is consumed until the first
// call to Next.
func Parse(code string) *Parser {
	return &Parser{
		MaxDepth: DefaultMaxDepth,
		tokens:   Tokenize(code),
	}
}

// Source returns the script text.
func (p *Parser) Source() string {
	return p.tokens.Source()
}

// Restart rewinds the parser to the start of the script.
func (p *Parser) Restart() {
	p.tokens.Restart()
	p.hasAhead = false
	p.last = Token{}
	p.pending = nil
	p.depth, p.braces = 0, 0
	p.fatal = nil
	p.failed = false
}

// Next returns the next top-level statement. At the end of input it returns
// io.EOF.
//
// A *SyntaxError is returned for a malformed statement; the parser then skips
// input up to the next ';' and may be called again. A *LexError ends parsing:
// it is returned once and followed by io.EOF.
func (p *Parser) Next() (Statement, error) {
	if len(p.pending) > 0 {
		stmt := p.pending[0]
		p.pending = p.pending[1:]
		return stmt, nil
	}
	if p.failed {
		return nil, io.EOF
	}
	if p.fatal != nil {
		p.failed = true
		return nil, p.fatal
	}
	t, err := p.peek()
	if err != nil {
		return nil, p.recover(err)
	}
	switch t.Category {
	case EOF:
		return nil, io.EOF
	case Comment:
		p.consume()
		return &NoOp{Token: &t}, nil
	}
	p.depth, p.braces = 0, 0
	end, stmt, err := p.statement(0, never)
	if err == nil {
		err = p.terminated(end, "parsing top-level statement")
	}
	if err != nil {
		return nil, p.recover(err)
	}
	tracer().Debugf("statement %v", stmt)
	return stmt, nil
}

// All parses the remaining statements, stopping at the first error.
func (p *Parser) All() ([]Statement, error) {
	var stmts []Statement
	for {
		stmt, err := p.Next()
		if err == io.EOF {
			return stmts, nil
		} else if err != nil {
			return stmts, err
		}
		stmts = append(stmts, stmt)
	}
}

// terminated checks that a statement ended with ';' or '}'.
func (p *Parser) terminated(end End, context string) error {
	if end.Kind == Done {
		if end.Category == Semicolon || end.Category == RightCurlyBracket {
			return nil
		}
		return unexpectedTokenWhile(p.last, context)
	}
	t, err := p.peek()
	if err != nil {
		return err
	}
	if t.Category == EOF {
		return unexpectedEnd(context)
	}
	return unexpectedTokenWhile(t, context)
}

// recover prepares the parser for the next statement after an error and
// returns the error to report.
func (p *Parser) recover(err error) error {
	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		p.failed = true
		return err
	}
	tracer().Infof("syntax error: %v", err)
	p.pending = nil // comments of the broken statement are dropped with it
	if !p.hasAhead && p.braces == 0 && p.last == synErr.Token && closes(p.last) {
		return err
	}
	for {
		t, lexErr := p.next()
		if lexErr != nil {
			p.fatal = lexErr
			return err
		}
		if t.Category == EOF || (p.braces == 0 && closes(t)) {
			return err
		}
	}
}

// closes checks if a token may end a top-level statement.
func closes(t Token) bool {
	return t.Category == Semicolon || t.Category == RightCurlyBracket
}

// --- Token access ----------------------------------------------------------

// next consumes a token. Comments are returned like any other token.
func (p *Parser) next() (Token, error) {
	if p.hasAhead {
		p.hasAhead = false
		p.advance(p.ahead)
		return p.ahead, nil
	}
	t, err := p.tokens.Next()
	if err != nil {
		return t, err
	}
	p.advance(t)
	return t, nil
}

// advance records t as consumed and keeps count of open curly brackets.
func (p *Parser) advance(t Token) {
	p.last = t
	switch t.Category {
	case LeftCurlyBracket:
		p.braces++
	case RightCurlyBracket:
		if p.braces > 0 {
			p.braces--
		}
	}
}

// peek looks at the next token without consuming it.
func (p *Parser) peek() (Token, error) {
	if !p.hasAhead {
		t, err := p.tokens.Next()
		if err != nil {
			return t, err
		}
		p.ahead, p.hasAhead = t, true
	}
	return p.ahead, nil
}

func (p *Parser) consume() {
	if p.hasAhead {
		p.advance(p.ahead)
		p.hasAhead = false
	}
}

// significant peeks at the next token which is not a comment. Comments on
// the way are retained as pending no-ops.
func (p *Parser) significant() (Token, error) {
	for {
		t, err := p.peek()
		if err != nil || t.Category != Comment {
			return t, err
		}
		p.consume()
		p.pending = append(p.pending, &NoOp{Token: &t})
	}
}

// take consumes the next token, failing at end of input.
func (p *Parser) take(context string) (Token, error) {
	t, err := p.next()
	if err != nil {
		return t, err
	}
	if t.Category == EOF {
		return t, unexpectedEnd(context)
	}
	return t, nil
}

// expect consumes the next significant token, failing at end of input.
func (p *Parser) expect(context string) (Token, error) {
	t, err := p.significant()
	if err != nil {
		return t, err
	}
	if t.Category == EOF {
		return t, unexpectedEnd(context)
	}
	p.consume()
	return t, nil
}

// expectCategory consumes the next significant token if it is of category c.
func (p *Parser) expectCategory(c Category, context string) (Token, error) {
	t, err := p.expect(context)
	if err != nil {
		return t, err
	}
	if t.Category != c {
		return t, unexpectedTokenWhile(t, context)
	}
	return t, nil
}

// --- Statements ------------------------------------------------------------

// statement parses a statement whose infix operators bind at least with
// minBP. If abort matches the category of the first token, the statement
// ends right there with a no-op.
func (p *Parser) statement(minBP int, abort abortFunc) (End, Statement, error) {
	p.depth++
	defer func() { p.depth-- }()
	for {
		token, err := p.take("parsing statement")
		if err != nil {
			return open, nil, err
		}
		if p.depth > p.MaxDepth {
			return open, nil, &SyntaxError{Kind: NestingTooDeep, Token: token}
		}
		if abort(token.Category) {
			return done(token.Category), &NoOp{Token: &token}, nil
		}
		if token.Category == RightCurlyBracket { // blocks consume their own '}'
			return open, nil, unexpectedToken(token)
		}
		state, left, err := p.prefixStatement(token, abort)
		if err != nil {
			return open, nil, err
		}
		switch state.kind {
		case prefixOpenEnd:
			p.pending = append(p.pending, left)
			continue
		case prefixBreak:
			return done(state.category), left, nil
		}
		return p.infixStatement(minBP, left, abort)
	}
}

// operand parses the operand of an operator. A bare terminator is not an
// operand.
func (p *Parser) operand(bp int, abort abortFunc) (End, Statement, error) {
	end, stmt, err := p.statement(bp, abort)
	if err != nil {
		return end, stmt, err
	}
	if noop, ok := stmt.(*NoOp); ok && noop.Token != nil && noop.Token.Category != Comment {
		return end, stmt, unexpectedTokenWhile(*noop.Token, "expecting an operand")
	}
	return end, stmt, nil
}

// expression parses a statement which has to stop in front of a closing
// bracket, a comma or a colon.
func (p *Parser) expression(context string) (Statement, error) {
	end, stmt, err := p.operand(0, never)
	if err != nil {
		return nil, err
	}
	if end.Kind == Done {
		return nil, unexpectedTokenWhile(p.last, context)
	}
	return stmt, nil
}

// body parses a statement which has to be complete, e.g. the body of a loop.
func (p *Parser) body(context string) (End, Statement, error) {
	end, stmt, err := p.statement(0, never)
	if err != nil {
		return end, nil, err
	}
	if err = p.terminated(end, context); err != nil {
		return end, nil, err
	}
	return end, stmt, nil
}
