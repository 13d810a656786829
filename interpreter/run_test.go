package interpreter

import (
	"errors"
	"testing"

	"github.com/npillmayer/nasl/runtime"
	"github.com/npillmayer/nasl/syntax"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRunContinuesAfterErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.interpreter")
	defer teardown()
	//
	reg := runtime.NewRegister()
	all := Run("a = ; b = 2; c = 1 / 0; d = 4;", reg, newContext()).All()
	if len(all) != 4 {
		t.Fatalf("expected 4 results, got %d: %v", len(all), all)
	}
	var synErr *syntax.SyntaxError
	if !errors.As(all[0].Err, &synErr) || Classify(all[0].Err) != SyntaxError {
		t.Errorf("expected syntax error first, got %v", all[0].Err)
	}
	if all[1].Err != nil || all[1].Value != runtime.Number(2) {
		t.Errorf("expected b = 2, got %v", all[1])
	}
	if !IsKind(all[2].Err, DivisionByZero) || Classify(all[2].Err) != InterpretFailure {
		t.Errorf("expected division by zero, got %v", all[2].Err)
	}
	if v, _ := reg.Value("d"); v != runtime.Number(4) {
		t.Errorf("expected d = 4, got %v", v)
	}
	if _, ok := reg.Value("c"); ok {
		t.Error("did not expect c to be assigned")
	}
}

func TestRunLexErrorEndsSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.interpreter")
	defer teardown()
	//
	results := Run(`a = 1; b = "unclosed`, runtime.NewRegister(), newContext())
	all := results.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 results, got %v", all)
	}
	if Classify(all[1].Err) != LexError {
		t.Errorf("expected lexical error, got %v", all[1].Err)
	}
	if !results.Done() {
		t.Error("expected sequence to be done")
	}
}

func TestRunExit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.interpreter")
	defer teardown()
	//
	reg := runtime.NewRegister()
	all := Run("a = 1; exit(3); a = 2;", reg, newContext()).All()
	if len(all) != 2 {
		t.Fatalf("expected exit to end the sequence, got %v", all)
	}
	if !all[1].IsExit() || all[1].Value != runtime.Exit(3) {
		t.Errorf("expected exit(3), got %v", all[1].Value)
	}
	if v, _ := reg.Value("a"); v != runtime.Number(1) {
		t.Errorf("expected a = 1, got %v", v)
	}
	all = Run("function f() { exit(); } f(); x = 1;", runtime.NewRegister(), newContext()).All()
	if len(all) != 2 || all[1].Value != runtime.Exit(0) {
		t.Errorf("expected exit from within a function, got %v", all)
	}
}

func TestRunReturnAtTopLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.interpreter")
	defer teardown()
	//
	all := Run("return 5; a = 1;", runtime.NewRegister(), newContext()).All()
	if len(all) != 2 || all[0].Value != runtime.Number(5) || all[1].Err != nil {
		t.Errorf("expected return to yield its value, got %v", all)
	}
}

func TestRunBreakAndRestart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.interpreter")
	defer teardown()
	//
	reg := runtime.NewRegister()
	results := Run("a = 1; a += 1; a += 1;", reg, newContext())
	if r, ok := results.Next(); !ok || r.Value != runtime.Number(1) {
		t.Fatalf("expected first result a = 1, got %v", r)
	}
	results.Break()
	if _, ok := results.Next(); ok || !results.Done() {
		t.Error("expected no results after Break")
	}
	results.Restart()
	all := results.All()
	if len(all) != 3 || all[2].Value != runtime.Number(3) {
		t.Errorf("expected three results after restart, got %v", all)
	}
}

func TestRunComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.interpreter")
	defer teardown()
	//
	all := Run("# header\na = 1; # trailing\n", runtime.NewRegister(), newContext()).All()
	for _, r := range all {
		if r.Err != nil {
			t.Errorf("unexpected error %v", r.Err)
		}
	}
	if len(all) != 3 {
		t.Errorf("expected comments as results of their own, got %v", all)
	}
}

func TestClassify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.interpreter")
	defer teardown()
	//
	tests := []struct {
		err   error
		class ErrorClass
	}{
		{nil, UnknownError},
		{errors.New("x"), UnknownError},
		{&syntax.LexError{}, LexError},
		{&syntax.SyntaxError{}, SyntaxError},
		{fail(TypeMismatch, nil, "x"), InterpretFailure},
		{failWith(FunctionFailed, nil, "f", runtime.ErrMissingArgument("f", "x")), FunctionError},
		{failWith(IncludeFailed, nil, "a", &runtime.LoadError{Name: "a"}), LoadError},
	}
	for _, test := range tests {
		if c := Classify(test.err); c != test.class {
			t.Errorf("%v: expected class %s, got %s", test.err, test.class, c)
		}
	}
}
