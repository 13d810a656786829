package syntax

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/nasl"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func categories(t *testing.T, input string) []Category {
	tokens, err := Tokenize(input).All()
	if err != nil {
		t.Fatalf("unexpected error tokenizing %q: %v", input, err)
	}
	cats := make([]Category, len(tokens))
	for i, tok := range tokens {
		cats[i] = tok.Category
	}
	return cats
}

func TestScannerNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.syntax")
	defer teardown()
	//
	tokens, err := Tokenize("a = 0x1f + 017 * 0b101 - 10;").All()
	if err != nil {
		t.Fatal(err)
	}
	expected := []struct {
		cat  Category
		base Base
		lex  string
	}{
		{Identifier, Base10, "a"},
		{Equal, Base10, "="},
		{Number, Base16, "0x1f"},
		{Plus, Base10, "+"},
		{Number, Base8, "017"},
		{Star, Base10, "*"},
		{Number, Base2, "0b101"},
		{Minus, Base10, "-"},
		{Number, Base10, "10"},
		{Semicolon, Base10, ";"},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, e := range expected {
		if tokens[i].Category != e.cat || tokens[i].Base != e.base || tokens[i].Lexeme != e.lex {
			t.Errorf("token #%d: expected %v/%v %q, got %v", i, e.cat, e.base, e.lex, tokens[i])
		}
	}
	if tokens[2].Span != nasl.MakeSpan(4, 8) {
		t.Errorf("expected span of 0x1f to be (4…8), is %v", tokens[2].Span)
	}
}

func TestScannerOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.syntax")
	defer teardown()
	//
	for c := LeftParen; c <= StarEqual; c++ {
		cats := categories(t, c.String())
		if len(cats) != 1 || cats[0] != c {
			t.Errorf("expected %q to scan as a single token, got %v", c.String(), cats)
		}
	}
	cats := categories(t, "a>>>=b>!<c")
	expected := []Category{Identifier, GreaterGreaterGreaterEqual, Identifier, GreaterBangLess, Identifier}
	if !reflect.DeepEqual(cats, expected) {
		t.Errorf("expected %v, got %v", expected, cats)
	}
}

func TestScannerStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.syntax")
	defer teardown()
	//
	tokens, err := Tokenize(`"hello" 'it\'s'`).All()
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %v", tokens)
	}
	if tokens[0].Quoting != Unquotable || tokens[0].Lexeme != "hello" || tokens[0].Span != nasl.MakeSpan(1, 6) {
		t.Errorf("unexpected double-quoted string token %v", tokens[0])
	}
	if tokens[1].Quoting != Quotable || tokens[1].Lexeme != `it\'s` {
		t.Errorf("unexpected single-quoted string token %v", tokens[1])
	}
}

func TestScannerKeywordsAndComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.syntax")
	defer teardown()
	//
	tokens, err := Tokenize("if else foreach _FCT_ANON_ARGS x # remark\n192.168.0.1").All()
	if err != nil {
		t.Fatal(err)
	}
	kws := []Keyword{KwIf, KwElse, KwForEach, KwFCTAnonArgs, NoKeyword}
	for i, kw := range kws {
		if tokens[i].Category != Identifier || tokens[i].Keyword != kw {
			t.Errorf("token #%d: expected keyword %v, got %v", i, kw, tokens[i])
		}
	}
	if tokens[5].Category != Comment || tokens[5].Lexeme != "# remark" {
		t.Errorf("expected comment, got %v", tokens[5])
	}
	if tokens[6].Category != IPv4Address {
		t.Errorf("expected IPv4 address, got %v", tokens[6])
	}
}

func TestScannerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.syntax")
	defer teardown()
	//
	_, err := Tokenize(`a = "abc`).All()
	var lexErr *LexError
	if !errors.As(err, &lexErr) || lexErr.Kind != Unclosed {
		t.Errorf("expected unclosed string error, got %v", err)
	}
	tz := Tokenize("a @ b")
	_, err = tz.All()
	if !errors.As(err, &lexErr) || lexErr.Kind != UnknownSymbol {
		t.Fatalf("expected unknown symbol error, got %v", err)
	}
	if lexErr.Span.From() != 2 {
		t.Errorf("expected error at position 2, got %v", lexErr.Span)
	}
	if _, err2 := tz.Next(); err2 != err {
		t.Errorf("expected error to be sticky, got %v", err2)
	}
}

func TestScannerRestart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.syntax")
	defer teardown()
	//
	tz := Tokenize("a = 1; # done")
	first, err := tz.All()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if tok, _ := tz.Next(); tok.Category != EOF {
			t.Errorf("expected EOF after end of input, got %v", tok)
		}
	}
	tz.Restart()
	second, err := tz.All()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical tokens after restart, got %v and %v", first, second)
	}
}
