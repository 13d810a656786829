package syntax

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/nasl"
)

// --- Lexical errors --------------------------------------------------------

// LexErrorKind classifies lexical errors.
type LexErrorKind int8

// Kinds of lexical errors.
const (
	UnknownSymbol LexErrorKind = iota // input matches no token category
	Unclosed                          // string literal without closing quote
)

func (k LexErrorKind) String() string {
	if k == Unclosed {
		return "unclosed string"
	}
	return "unknown symbol"
}

// LexError is produced by the tokenizer.
type LexError struct {
	Kind LexErrorKind
	Span nasl.Span
	Text string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s %q at %v", e.Kind, e.Text, e.Span)
}

// --- Syntax errors ---------------------------------------------------------

// SyntaxErrorKind classifies parser errors.
type SyntaxErrorKind int8

// Kinds of syntax errors.
const (
	UnexpectedToken SyntaxErrorKind = iota
	UnexpectedEnd
	NestingTooDeep
)

// SyntaxError is produced by the parser. UnexpectedToken and NestingTooDeep
// carry the offending token, UnexpectedEnd carries a description of what the
// parser was doing when the input ended.
type SyntaxError struct {
	Kind    SyntaxErrorKind
	Token   Token
	Context string
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case UnexpectedEnd:
		return fmt.Sprintf("unexpected end while %s", e.Context)
	case NestingTooDeep:
		return fmt.Sprintf("statement nested too deeply at %v", e.Token.Span)
	}
	if e.Context != "" {
		return fmt.Sprintf("unexpected token %v (%s)", e.Token, e.Context)
	}
	return fmt.Sprintf("unexpected token %v", e.Token)
}

// Span returns the position of the error, if known.
func (e *SyntaxError) Span() nasl.Span {
	return e.Token.Span
}

func unexpectedToken(t Token) *SyntaxError {
	return &SyntaxError{Kind: UnexpectedToken, Token: t}
}

func unexpectedTokenWhile(t Token, context string) *SyntaxError {
	return &SyntaxError{Kind: UnexpectedToken, Token: t, Context: context}
}

func unexpectedEnd(context string) *SyntaxError {
	return &SyntaxError{Kind: UnexpectedEnd, Context: context}
}

// IsUnexpectedToken is a predicate for tests and callers.
func IsUnexpectedToken(err error) bool {
	var serr *SyntaxError
	return errors.As(err, &serr) && serr.Kind == UnexpectedToken
}

// --- Snippets --------------------------------------------------------------

// Snippet renders a lexical or syntax error together with the source line it
// occurred in and a caret pointing at the offending column:
//
//     syntax error at 2:5: unexpected token ')'
//        1 | a = 1;
//        2 | b = );
//          |     ^
//
// Other errors are returned as their plain message.
func Snippet(err error, source string) string {
	var span nasl.Span
	var header string
	var lexErr *LexError
	var synErr *SyntaxError
	switch {
	case errors.As(err, &lexErr):
		span, header = lexErr.Span, "lexical error"
	case errors.As(err, &synErr):
		if synErr.Kind == UnexpectedEnd {
			span = nasl.MakeSpan(len(source), len(source))
		} else {
			span = synErr.Token.Span
		}
		header = "syntax error"
	default:
		return err.Error()
	}
	lines := strings.Split(source, "\n")
	line, col := lineAndColumn(source, int(span.From()))
	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n", header, line, col, err.Error())
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	if line <= len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	}
	fmt.Fprintf(&b, "     | %s^", strings.Repeat(" ", col-1))
	return b.String()
}

// lineAndColumn returns 1-based coordinates for a byte offset.
func lineAndColumn(source string, offset int) (int, int) {
	if offset > len(source) {
		offset = len(source)
	}
	before := source[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndex(before, "\n")
	return line, col
}
