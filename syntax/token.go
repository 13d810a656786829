package syntax

import (
	"fmt"

	"github.com/npillmayer/nasl"
)

// Category is the closed set of lexical kinds a token may have.
type Category int8

// Token categories. Some categories carry additional information in the
// token: Number has a Base, String has a Quoting and Identifier may have been
// pre-resolved to a Keyword.
const (
	EOF Category = iota
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftCurlyBracket
	RightCurlyBracket
	Comma
	Semicolon
	DoublePoint
	Percent
	PercentEqual
	Tilde
	Caret
	Ampersand
	AmpersandAmpersand
	Pipe
	PipePipe
	Bang
	BangEqual
	BangTilde
	Equal
	EqualEqual
	EqualTilde
	Greater
	GreaterGreater
	GreaterEqual
	GreaterLess
	GreaterBangLess
	GreaterGreaterGreater
	GreaterGreaterEqual
	GreaterGreaterGreaterEqual
	Less
	LessLess
	LessEqual
	LessLessEqual
	Minus
	MinusMinus
	MinusEqual
	Plus
	PlusPlus
	PlusEqual
	Slash
	SlashEqual
	Star
	StarStar
	StarEqual
	String
	Number
	IPv4Address
	Identifier
	Comment
	categoryCount
)

var categoryNames = [...]string{
	"EOF", "(", ")", "[", "]", "{", "}", ",", ";", ":",
	"%", "%=", "~", "^", "&", "&&", "|", "||", "!", "!=", "!~",
	"=", "==", "=~", ">", ">>", ">=", "><", ">!<", ">>>", ">>=", ">>>=",
	"<", "<<", "<=", "<<=", "-", "--", "-=", "+", "++", "+=",
	"/", "/=", "*", "**", "*=",
	"String", "Number", "IPv4Address", "Identifier", "Comment",
}

func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// operatorLexemes lists every category that is spelled by a fixed lexeme.
// The scanner matches them atomically, i.e. '>>>=' is never split into parts.
func operatorLexemes() map[string]Category {
	m := make(map[string]Category)
	for c := LeftParen; c <= StarEqual; c++ {
		m[categoryNames[c]] = c
	}
	return m
}

// Base is the radix of a number literal.
type Base int8

// Number bases.
const (
	Base10 Base = iota
	Base2
	Base8
	Base16
)

// Radix returns the numeric radix of a base.
func (b Base) Radix() int {
	switch b {
	case Base2:
		return 2
	case Base8:
		return 8
	case Base16:
		return 16
	}
	return 10
}

// Quoting distinguishes the two kinds of string literals.
type Quoting int8

// String literal kinds. Strings in double quotes are taken verbatim,
// strings in single quotes may contain backslash escapes.
const (
	Unquotable Quoting = iota // "…"
	Quotable                  // '…'
)

// Keyword is the known kind of an identifier.
type Keyword int8

// Keywords of the language. NoKeyword marks plain identifiers.
const (
	NoKeyword Keyword = iota
	KwIf
	KwElse
	KwFor
	KwForEach
	KwWhile
	KwRepeat
	KwUntil
	KwFunction
	KwReturn
	KwInclude
	KwLocalVar
	KwGlobalVar
	KwBreak
	KwContinue
	KwExit
	KwNull
	KwTrue
	KwFalse
	KwFCTAnonArgs
)

var keywords = map[string]Keyword{
	"if":             KwIf,
	"else":           KwElse,
	"for":            KwFor,
	"foreach":        KwForEach,
	"while":          KwWhile,
	"repeat":         KwRepeat,
	"until":          KwUntil,
	"function":       KwFunction,
	"return":         KwReturn,
	"include":        KwInclude,
	"local_var":      KwLocalVar,
	"global_var":     KwGlobalVar,
	"break":          KwBreak,
	"continue":       KwContinue,
	"exit":           KwExit,
	"NULL":           KwNull,
	"TRUE":           KwTrue,
	"FALSE":          KwFalse,
	"_FCT_ANON_ARGS": KwFCTAnonArgs,
}

func (k Keyword) String() string {
	for name, kw := range keywords {
		if kw == k {
			return name
		}
	}
	return "<none>"
}

// --- Tokens ----------------------------------------------------------------

// Token is a classified, position-tagged lexical unit. Tokens are values and
// may be compared with ==.
//
// For strings, Lexeme and Span cover the content between the quotes.
type Token struct {
	Category Category
	Base     Base    // for Number
	Quoting  Quoting // for String
	Keyword  Keyword // for Identifier
	Lexeme   string
	Span     nasl.Span
}

// IsKeyword checks if a token is an identifier resolved to keyword kw.
func (t Token) IsKeyword(kw Keyword) bool {
	return t.Category == Identifier && t.Keyword == kw
}

func (t Token) String() string {
	switch t.Category {
	case String:
		if t.Quoting == Quotable {
			return fmt.Sprintf("'%s'@%v", t.Lexeme, t.Span)
		}
		return fmt.Sprintf("%q@%v", t.Lexeme, t.Span)
	case Number, IPv4Address, Identifier, Comment:
		return fmt.Sprintf("%s@%v", t.Lexeme, t.Span)
	}
	return fmt.Sprintf("'%s'@%v", t.Category, t.Span)
}
