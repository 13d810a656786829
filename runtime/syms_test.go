package runtime

import (
	"testing"

	"github.com/npillmayer/nasl/syntax"
)

func TestNewSymTab(t *testing.T) {
	symtab := NewSymbolTable()
	if symtab == nil {
		t.Error("no symbol table created")
	}
}

func TestNewSymbol(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if sym == nil {
		t.Fatal("no symbol created for table")
	}
	if _, ok := sym.Content.(Null); !ok {
		t.Errorf("expected new symbol to hold NULL, holds %v", sym.Content)
	}
	sym.Content = Number(5)
	if v, ok := sym.Value(); !ok || v != Number(5) {
		t.Errorf("content does not work")
	}
}

func TestTwoSymbolsDistinct(t *testing.T) {
	symtab := NewSymbolTable()
	sym1, _ := symtab.DefineTag("new-sym1")
	sym2, _ := symtab.DefineTag("new-sym2")
	if sym1 == sym2 {
		t.Error("2 symbols with equal name")
	}
}

func TestResolveTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if s := symtab.ResolveTag(sym.Name()); s == nil {
		t.Error("cannot find stored symbol in table")
	}
}

func TestResolveOrDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, found := symtab.ResolveOrDefineTag(sym.Name()); !found {
		t.Error("cannot find stored symbol in table")
	}
	if _, found := symtab.ResolveOrDefineTag("other"); found {
		t.Error("did not expect to find 'other'")
	}
	if symtab.Size() != 2 {
		t.Errorf("expected 2 symbols, have %d", symtab.Size())
	}
}

func TestDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, old := symtab.DefineTag("new-sym"); old != sym {
		t.Error("symbol should have been replaced")
	}
}

func TestEachInOrder(t *testing.T) {
	symtab := NewSymbolTable()
	for _, n := range []string{"c", "a", "b"} {
		symtab.DefineTag(n)
	}
	var names string
	symtab.Each(func(n string, _ *Tag) { names += n })
	if names != "abc" {
		t.Errorf("expected tags in order abc, got %s", names)
	}
}

func TestTagContent(t *testing.T) {
	fn := NewTag("f").WithContent(Function{Decl: &syntax.FunctionDecl{}})
	if _, ok := fn.Value(); ok {
		t.Error("a function is not a value")
	}
	t.Logf("tag = %v", fn)
}
