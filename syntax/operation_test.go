package syntax

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		token    Token
		expected Operation
	}{
		{Token{Category: Plus}, Operation{Kind: OpOperator, Category: Plus}},
		{Token{Category: GreaterBangLess}, Operation{Kind: OpOperator, Category: GreaterBangLess}},
		{Token{Category: PipePipe}, Operation{Kind: OpOperator, Category: PipePipe}},
		{Token{Category: Bang}, Operation{Kind: OpOperator, Category: Bang}},
		{Token{Category: Equal}, Operation{Kind: OpAssign, Category: Equal}},
		{Token{Category: GreaterGreaterGreaterEqual}, Operation{Kind: OpAssign, Category: GreaterGreaterGreaterEqual}},
		{Token{Category: PlusPlus}, Operation{Kind: OpAssign, Category: PlusPlus}},
		{Token{Category: Number}, Operation{Kind: OpPrimitive}},
		{Token{Category: String}, Operation{Kind: OpPrimitive}},
		{Token{Category: IPv4Address}, Operation{Kind: OpPrimitive}},
		{Token{Category: LeftBrace}, Operation{Kind: OpGrouping, Category: LeftBrace}},
		{Token{Category: LeftCurlyBracket}, Operation{Kind: OpGrouping, Category: LeftCurlyBracket}},
		{Token{Category: Identifier, Lexeme: "a"}, Operation{Kind: OpVariable}},
		{Token{Category: Identifier, Keyword: KwWhile}, Operation{Kind: OpKeyword, Keyword: KwWhile}},
		{Token{Category: Comment}, Operation{Kind: OpNoOp, Category: Comment}},
		{Token{Category: Semicolon}, Operation{Kind: OpNoOp, Category: Semicolon}},
		{Token{Category: RightParen}, Operation{Kind: OpNoOp, Category: RightParen}},
	}
	for _, test := range tests {
		op, err := Classify(test.token)
		if err != nil {
			t.Errorf("unexpected error for %v: %v", test.token, err)
		} else if op != test.expected {
			t.Errorf("expected %v to classify as %v, is %v", test.token, test.expected, op)
		}
	}
}

func TestClassifyTotal(t *testing.T) {
	for c := LeftParen; c < categoryCount; c++ {
		if _, err := Classify(Token{Category: c}); err != nil {
			t.Errorf("expected category %v to be classified, got %v", c, err)
		}
	}
	if _, err := Classify(Token{Category: EOF}); !IsUnexpectedToken(err) {
		t.Errorf("expected EOF to be an unexpected token, got %v", err)
	}
}
