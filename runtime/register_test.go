package runtime

import (
	"testing"

	"github.com/npillmayer/nasl/syntax"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRegisterLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.runtime")
	defer teardown()
	//
	r := NewRegister()
	if _, ok := r.Value("a"); ok {
		t.Fatal("did not expect a to be declared")
	}
	r.AssignOrDeclare("a", Number(1))
	if v, ok := r.Value("a"); !ok || v != Number(1) {
		t.Errorf("expected a=1, got %v", v)
	}
	r.PushFrame("f", FunctionFrame)
	if v, ok := r.Value("a"); !ok || v != Number(1) {
		t.Errorf("expected global a to be visible in call, got %v", v)
	}
	r.Declare("a", String("local"))
	if v, _ := r.Value("a"); v != String("local") {
		t.Errorf("expected local a to shadow global, got %v", v)
	}
	r.AssignOrDeclare("b", Number(2))
	r.PopFrame()
	if v, _ := r.Value("a"); v != Number(1) {
		t.Errorf("expected global a after return, got %v", v)
	}
	if _, ok := r.Value("b"); ok {
		t.Error("expected b to vanish with its frame")
	}
	if r.Depth() != 0 {
		t.Errorf("expected depth 0, is %d", r.Depth())
	}
}

func TestRegisterFramesAreOpaque(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.runtime")
	defer teardown()
	//
	r := NewRegister()
	r.PushFrame("caller", FunctionFrame)
	r.Declare("x", Number(7))
	r.PushFrame("callee", BuiltinFrame)
	if _, ok := r.Value("x"); ok {
		t.Error("expected locals of caller to be invisible in callee")
	}
	r.AssignOrDeclare("x", Number(8))
	r.PopFrame()
	if v, _ := r.Value("x"); v != Number(7) {
		t.Errorf("expected caller's x to be untouched, got %v", v)
	}
	r.PopFrame()
}

func TestRegisterGlobalsAndFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.runtime")
	defer teardown()
	//
	r := NewRegisterWith(map[string]Value{"g": String("x")})
	decl := &syntax.FunctionDecl{Name: syntax.Token{Lexeme: "f"}}
	r.PushFrame("f", FunctionFrame)
	r.DeclareGlobal("f", Function{Decl: decl})
	r.DeclareGlobal("h", Number(3))
	r.PopFrame()
	if d, ok := r.Function("f"); !ok || d != decl {
		t.Errorf("expected function f to be declared globally")
	}
	if _, ok := r.Value("f"); ok {
		t.Error("expected f not to be a variable")
	}
	if v, _ := r.Value("h"); v != Number(3) {
		t.Errorf("expected global h=3, got %v", v)
	}
	if v, _ := r.Value("g"); v != String("x") {
		t.Errorf("expected initial global g, got %v", v)
	}
}

func TestRegisterArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.runtime")
	defer teardown()
	//
	r := NewRegister()
	r.DeclareGlobal("name", String("global"))
	r.PushFrame("f", BuiltinFrame)
	defer r.PopFrame()
	r.Declare(AnonArgs, Array{Number(1), Number(2)})
	if len(r.Positional()) != 2 {
		t.Errorf("expected 2 positional arguments, got %v", r.Positional())
	}
	if _, ok := r.Argument("name"); ok {
		t.Error("expected global not to count as argument")
	}
}

func TestPopGlobalFramePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected popping the global frame to panic")
		}
	}()
	NewRegister().PopFrame()
}

func TestRootFrame(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.runtime")
	defer teardown()
	//
	r := NewRegister()
	if !r.Frames().Current().IsRoot() {
		t.Error("expected a new register to start in the root frame")
	}
	r.PushFrame("f", FunctionFrame)
	r.PushFrame("g", BuiltinFrame)
	if r.Frames().Current().IsRoot() || !r.Frames().Globals().IsRoot() {
		t.Error("expected only the global frame to be the root")
	}
	r.PopFrame()
	r.PopFrame()
	if !r.Frames().Current().IsRoot() {
		t.Error("expected to be back in the root frame")
	}
}
