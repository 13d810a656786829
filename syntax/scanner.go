package syntax

import (
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/nasl"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time compilation of the DFA

// compiledLexer creates the lexmachine lexer for NASL. The DFA is compiled
// once and shared by all tokenizers; lexmachine scanners keep their own
// cursor, so this is safe for concurrent use.
func compiledLexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		lexer.Add([]byte(`#[^\n]*`), makeToken(Comment))
		lexer.Add([]byte(`"[^"]*"`), stringToken(Unquotable, true))
		lexer.Add([]byte(`"[^"]*`), stringToken(Unquotable, false))
		lexer.Add([]byte(`'([^'\\]|\\.)*'`), stringToken(Quotable, true))
		lexer.Add([]byte(`'([^'\\]|\\.)*`), stringToken(Quotable, false))
		lexer.Add([]byte(`[0-9]+\.[0-9]+\.[0-9]+\.[0-9]+`), makeToken(IPv4Address))
		lexer.Add([]byte(`0[xX]([0-9]|[a-f]|[A-F])+`), numberToken(Base16))
		lexer.Add([]byte(`0[bB][01]+`), numberToken(Base2))
		lexer.Add([]byte(`0[0-7]+`), numberToken(Base8))
		lexer.Add([]byte(`[0-9]+`), numberToken(Base10))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), identifierToken)
		// operators and punctuation, escaped char by char
		ops := operatorLexemes()
		lexemes := make([]string, 0, len(ops))
		for lit := range ops {
			lexemes = append(lexemes, lit)
		}
		sort.Strings(lexemes)
		for _, lit := range lexemes {
			r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
			lexer.Add([]byte(r), makeToken(ops[lit]))
		}
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("Error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// Tokenizer produces the tokens of a script lazily. It may be restarted and
// will then deliver the identical token sequence again.
type Tokenizer struct {
	source  string
	scanner *lexmachine.Scanner
	err     error // sticky: once failed, a tokenizer stays failed
	done    bool
}

// Tokenize creates a tokenizer for a script.
func Tokenize(source string) *Tokenizer {
	t := &Tokenizer{source: source}
	t.Restart()
	return t
}

// Restart rewinds the tokenizer to the start of its input.
func (t *Tokenizer) Restart() {
	t.err, t.done = nil, false
	lx, err := compiledLexer()
	if err != nil {
		t.err = err
		return
	}
	if t.scanner, err = lx.Scanner([]byte(t.source)); err != nil {
		t.err = err
	}
}

// Source returns the input text of the tokenizer.
func (t *Tokenizer) Source() string {
	return t.source
}

// Next returns the next token. At the end of input a token of category EOF
// is returned, as often as Next is called. Input which does not form a token
// results in a *LexError.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}
	if t.done {
		return t.eof(), nil
	}
	tok, err, eof := t.scanner.Next()
	if err != nil {
		t.err = asLexError(err, t.source)
		tracer().Debugf("scanner error: %v", t.err)
		return Token{}, t.err
	}
	if eof {
		t.done = true
		return t.eof(), nil
	}
	token := tok.(Token)
	tracer().Debugf("token %v", token)
	return token, nil
}

// All collects the remaining tokens, excluding EOF.
func (t *Tokenizer) All() ([]Token, error) {
	var tokens []Token
	for {
		token, err := t.Next()
		if err != nil {
			return tokens, err
		}
		if token.Category == EOF {
			return tokens, nil
		}
		tokens = append(tokens, token)
	}
}

func (t *Tokenizer) eof() Token {
	return Token{Category: EOF, Span: nasl.MakeSpan(len(t.source), len(t.source))}
}

func asLexError(err error, source string) error {
	if lexErr, ok := err.(*LexError); ok {
		return lexErr
	}
	if ui, ok := err.(*machines.UnconsumedInput); ok {
		end := ui.FailTC
		if end <= ui.StartTC {
			end = ui.StartTC + 1
		}
		span := nasl.MakeSpan(ui.StartTC, end)
		if span.To() > uint64(len(source)) {
			span[1] = uint64(len(source))
		}
		return &LexError{Kind: UnknownSymbol, Span: span, Text: span.Slice(source)}
	}
	return err
}

// ---------------------------------------------------------------------------

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func matchSpan(m *machines.Match) nasl.Span {
	return nasl.MakeSpan(m.TC, m.TC+len(m.Bytes))
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(cat Category) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{Category: cat, Lexeme: string(m.Bytes), Span: matchSpan(m)}, nil
	}
}

func numberToken(base Base) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{Category: Number, Base: base, Lexeme: string(m.Bytes), Span: matchSpan(m)}, nil
	}
}

func identifierToken(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	lexeme := string(m.Bytes)
	return Token{Category: Identifier, Keyword: keywords[lexeme], Lexeme: lexeme, Span: matchSpan(m)}, nil
}

// stringToken strips the quotes from a string match. A string without its
// closing quote extends to the end of input and is reported as unclosed.
func stringToken(q Quoting, closed bool) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		if !closed {
			return nil, &LexError{Kind: Unclosed, Span: matchSpan(m), Text: string(m.Bytes)}
		}
		return Token{
			Category: String,
			Quoting:  q,
			Lexeme:   string(m.Bytes[1 : len(m.Bytes)-1]),
			Span:     nasl.MakeSpan(m.TC+1, m.TC+len(m.Bytes)-1),
		}, nil
	}
}
