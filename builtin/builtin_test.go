package builtin

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/npillmayer/nasl/runtime"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type fakeResolver map[string][]string

func (r fakeResolver) LookupAddr(ctx context.Context, addr string) ([]string, error) {
	if names, ok := r[addr]; ok {
		return names, nil
	}
	return nil, errors.New("no such host")
}

var resolver = fakeResolver{
	"127.0.0.1":   {"localhost."},
	"192.168.0.7": {"scanme.example.org.", "alias.example.org."},
}

// call invokes a built-in the way the interpreter does, in a frame of its own.
func call(t *testing.T, ctx *runtime.Context, name string, args ...runtime.Value) (runtime.Value, error) {
	f, ok := Default().Lookup(name)
	if !ok {
		t.Fatalf("built-in %s not found", name)
	}
	reg := runtime.NewRegister()
	reg.PushFrame(name, runtime.BuiltinFrame)
	defer reg.PopFrame()
	reg.Declare(runtime.AnonArgs, runtime.Array(args))
	return f(reg, ctx)
}

func TestHostnameFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.builtin")
	defer teardown()
	//
	tests := []struct {
		target string
		name   string
	}{
		{"192.168.0.7", "scanme.example.org"},
		{"", "localhost"},
		{"10.0.0.1", "10.0.0.1"},        // lookup fails
		{"::1", "::1"},                  // lookup fails
		{"example.com", "example.com"},  // not an address
		{"not even a host", "not even a host"},
	}
	for _, test := range tests {
		ctx := runtime.NewContext(test.target, runtime.WithResolver(resolver))
		v, err := call(t, ctx, "get_host_name")
		if err != nil {
			t.Errorf("get_host_name for %q: unexpected error %v", test.target, err)
		} else if v != runtime.String(test.name) {
			t.Errorf("get_host_name for %q: expected %q, got %v", test.target, test.name, v)
		}
		v, err = call(t, ctx, "get_host_names")
		if err != nil {
			t.Errorf("get_host_names for %q: unexpected error %v", test.target, err)
		} else if !runtime.Equal(v, runtime.Array{runtime.String(test.name)}) {
			t.Errorf("get_host_names for %q: expected [%q], got %v", test.target, test.name, v)
		}
	}
}

func TestGetHostIP(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.builtin")
	defer teardown()
	//
	v, err := call(t, runtime.NewContext("192.168.0.7"), "get_host_ip")
	if err != nil || v != runtime.String("192.168.0.7") {
		t.Errorf("expected target address, got %v, %v", v, err)
	}
	v, err = call(t, runtime.NewContext(""), "get_host_ip")
	if err != nil || v != runtime.String(Localhost) {
		t.Errorf("expected localhost, got %v, %v", v, err)
	}
	_, err = call(t, runtime.NewContext("example.com"), "get_host_ip")
	var fnErr *runtime.FunctionError
	if !errors.As(err, &fnErr) || fnErr.Function != "get_host_ip" {
		t.Errorf("expected function error, got %v", err)
	}
}

func TestCoreFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.builtin")
	defer teardown()
	//
	var out bytes.Buffer
	ctx := runtime.NewContext("",
		runtime.WithOutput(&out),
		runtime.WithFunctions(Default()),
		runtime.WithPreferences(map[string]string{"timeout": "5"}),
	)
	if _, err := call(t, ctx, "display", runtime.String("a="), runtime.Number(1)); err != nil {
		t.Fatal(err)
	}
	if out.String() != "a=1\n" {
		t.Errorf("expected display output 'a=1', got %q", out.String())
	}
	v, _ := call(t, ctx, "make_list", runtime.Number(1), runtime.Array{runtime.Number(2), runtime.Number(3)})
	if !runtime.Equal(v, runtime.Array{runtime.Number(1), runtime.Number(2), runtime.Number(3)}) {
		t.Errorf("expected flattened list, got %v", v)
	}
	v, _ = call(t, ctx, "make_array", runtime.String("k"), runtime.Number(1))
	d, ok := v.(*runtime.Dict)
	if !ok || d.Len() != 1 {
		t.Fatalf("expected dict with one entry, got %v", v)
	}
	if _, err := call(t, ctx, "make_array", runtime.String("k")); err == nil {
		t.Error("expected error for odd number of arguments")
	}
	if v, _ = call(t, ctx, "keys", d); !runtime.Equal(v, runtime.Array{runtime.String("k")}) {
		t.Errorf("expected keys [k], got %v", v)
	}
	if v, _ = call(t, ctx, "max_index", runtime.Array{runtime.Null{}, runtime.Null{}}); v != runtime.Number(2) {
		t.Errorf("expected max_index 2, got %v", v)
	}
	if v, _ = call(t, ctx, "typeof", runtime.Number(2)); v != runtime.String("int") {
		t.Errorf("expected typeof int, got %v", v)
	}
	if v, _ = call(t, ctx, "isnull", runtime.Null{}); v != runtime.Boolean(true) {
		t.Errorf("expected isnull to be TRUE, got %v", v)
	}
	if v, _ = call(t, ctx, "defined_func", runtime.String("strlen")); v != runtime.Boolean(true) {
		t.Errorf("expected strlen to be defined, got %v", v)
	}
	if v, _ = call(t, ctx, "get_preference", runtime.String("timeout")); v != runtime.String("5") {
		t.Errorf("expected preference 5, got %v", v)
	}
	if v, _ = call(t, ctx, "get_preference", runtime.String("unknown")); v != (runtime.Null{}) {
		t.Errorf("expected NULL for unknown preference, got %v", v)
	}
	_, err := call(t, ctx, "typeof")
	var fnErr *runtime.FunctionError
	if !errors.As(err, &fnErr) || fnErr.Kind != runtime.MissingArgument {
		t.Errorf("expected missing argument, got %v", err)
	}
}

func TestStringFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.builtin")
	defer teardown()
	//
	ctx := runtime.NewContext("")
	s := func(x string) runtime.Value { return runtime.String(x) }
	n := func(x int64) runtime.Value { return runtime.Number(x) }
	tests := []struct {
		name     string
		args     []runtime.Value
		expected runtime.Value
	}{
		{"strlen", []runtime.Value{s("hello")}, n(5)},
		{"string", []runtime.Value{s("a"), n(1)}, s("a1")},
		{"int", []runtime.Value{s("42")}, n(42)},
		{"int", []runtime.Value{s("x")}, n(0)},
		{"tolower", []runtime.Value{s("AbC")}, s("abc")},
		{"toupper", []runtime.Value{s("AbC")}, s("ABC")},
		{"substr", []runtime.Value{s("abcdef"), n(1), n(3)}, s("bcd")},
		{"substr", []runtime.Value{s("abcdef"), n(4)}, s("ef")},
		{"substr", []runtime.Value{s("abc"), n(5)}, runtime.Null{}},
		{"strstr", []runtime.Value{s("foobar"), s("ob")}, s("obar")},
		{"strstr", []runtime.Value{s("foobar"), s("x")}, runtime.Null{}},
		{"hex", []runtime.Value{n(10)}, s("0x0a")},
		{"hex", []runtime.Value{n(256)}, s("0x100")},
		{"hex", []runtime.Value{n(-1)}, s("0xffffffffffffffff")},
		{"chomp", []runtime.Value{s("line\r\n")}, s("line")},
	}
	for _, test := range tests {
		v, err := call(t, ctx, test.name, test.args...)
		if err != nil {
			t.Errorf("%s%v: unexpected error %v", test.name, test.args, err)
		} else if !runtime.Equal(v, test.expected) {
			t.Errorf("%s%v: expected %s, got %s", test.name, test.args, runtime.Inspect(test.expected), runtime.Inspect(v))
		}
	}
	_, err := call(t, ctx, "strlen", runtime.Array{})
	var fnErr *runtime.FunctionError
	if !errors.As(err, &fnErr) || fnErr.Kind != runtime.WrongArgument {
		t.Errorf("expected wrong argument error, got %v", err)
	}
}

func TestChain(t *testing.T) {
	override := Table{"strlen": func(*runtime.Register, *runtime.Context) (runtime.Value, error) {
		return runtime.Number(-1), nil
	}}
	chain := Chain{override, Default()}
	f, ok := chain.Lookup("strlen")
	if !ok {
		t.Fatal("expected strlen to be found")
	}
	if v, _ := f(runtime.NewRegister(), runtime.NewContext("")); v != runtime.Number(-1) {
		t.Errorf("expected first table to win, got %v", v)
	}
	if _, ok = chain.Lookup("get_host_name"); !ok {
		t.Error("expected lookup to fall through to later tables")
	}
	if _, ok = chain.Lookup("no_such_function"); ok {
		t.Error("did not expect to find no_such_function")
	}
}
