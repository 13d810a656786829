package syntax

import "fmt"

// OpKind is the parse role of a token.
type OpKind int8

// Parse roles. The parser dispatches on these instead of switching on raw
// token categories.
const (
	OpOperator OpKind = iota
	OpPrimitive
	OpVariable
	OpGrouping
	OpAssign
	OpKeyword
	OpNoOp
)

var opKindNames = [...]string{"Operator", "Primitive", "Variable", "Grouping", "Assign", "Keyword", "NoOp"}

func (k OpKind) String() string {
	return opKindNames[k]
}

// Operation is the classification of a token. Category is set for
// operators, assignments and groupings, Keyword for keywords.
type Operation struct {
	Kind     OpKind
	Category Category
	Keyword  Keyword
}

func (op Operation) String() string {
	switch op.Kind {
	case OpOperator, OpAssign, OpGrouping:
		return fmt.Sprintf("%s(%s)", op.Kind, op.Category)
	case OpKeyword:
		return fmt.Sprintf("%s(%s)", op.Kind, op.Keyword)
	}
	return op.Kind.String()
}

// Classify maps a token to its parse role. It is total over all categories
// a tokenizer may deliver, except EOF, which cannot start or continue a
// statement and is reported as an unexpected token.
func Classify(token Token) (Operation, error) {
	switch c := token.Category; c {
	case Plus, Minus, Star, Slash, Percent, StarStar,
		LessLess, GreaterGreater, GreaterGreaterGreater,
		Tilde, Ampersand, Pipe, Caret, Bang,
		EqualTilde, BangTilde, GreaterLess, GreaterBangLess,
		AmpersandAmpersand, PipePipe,
		EqualEqual, BangEqual, Greater, Less, GreaterEqual, LessEqual:
		return Operation{Kind: OpOperator, Category: c}, nil
	case Equal, PlusEqual, MinusEqual, StarEqual, SlashEqual, PercentEqual,
		LessLessEqual, GreaterGreaterEqual, GreaterGreaterGreaterEqual,
		PlusPlus, MinusMinus:
		return Operation{Kind: OpAssign, Category: c}, nil
	case String, Number, IPv4Address:
		return Operation{Kind: OpPrimitive}, nil
	case LeftParen, LeftBrace, LeftCurlyBracket:
		return Operation{Kind: OpGrouping, Category: c}, nil
	case Identifier:
		if token.Keyword == NoKeyword {
			return Operation{Kind: OpVariable}, nil
		}
		return Operation{Kind: OpKeyword, Keyword: token.Keyword}, nil
	case Comment, Semicolon, Comma, DoublePoint, RightParen, RightBrace, RightCurlyBracket:
		return Operation{Kind: OpNoOp, Category: c}, nil
	}
	return Operation{}, unexpectedToken(token)
}
