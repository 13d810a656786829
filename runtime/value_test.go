package runtime

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		v     Value
		truth bool
	}{
		{Null{}, false},
		{Boolean(true), true},
		{Number(0), false},
		{Number(-1), true},
		{String(""), false},
		{String("0"), true},
		{Array{}, true},
		{NewDict(), true},
		{Exit(0), false},
	}
	for _, test := range tests {
		if Truthy(test.v) != test.truth {
			t.Errorf("expected truthiness of %s to be %v", Inspect(test.v), test.truth)
		}
	}
}

func TestEqualAndClone(t *testing.T) {
	d := NewDict()
	d.Put("b", Number(2))
	d.Put("a", Array{String("x")})
	c := Clone(d).(*Dict)
	if !Equal(d, c) {
		t.Errorf("expected clone %v to equal %v", c, d)
	}
	c.Put("a", Null{})
	if Equal(d, c) {
		t.Error("expected modified clone to differ")
	}
	if v, _ := d.Get("a"); !Equal(v, Array{String("x")}) {
		t.Errorf("expected original to be unchanged, got %v", v)
	}
	if Equal(Number(1), String("1")) {
		t.Error("expected values of different types to differ")
	}
}

func TestDictOrder(t *testing.T) {
	d := NewDict()
	for _, k := range []string{"z", "m", "a"} {
		d.Put(k, String(k))
	}
	keys := d.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[2] != "z" {
		t.Errorf("expected sorted keys, got %v", keys)
	}
	if d.String() != `{a: "a", m: "m", z: "z"}` {
		t.Errorf("unexpected dict rendering %s", d)
	}
}

func TestAsNumber(t *testing.T) {
	if n, ok := AsNumber(String("0x10")); !ok || n != 16 {
		t.Errorf("expected 16, got %d", n)
	}
	if _, ok := AsNumber(String("abc")); ok {
		t.Error("did not expect 'abc' to be numeric")
	}
	if n, ok := AsNumber(Boolean(true)); !ok || n != 1 {
		t.Errorf("expected 1, got %d", n)
	}
}

func TestLoaders(t *testing.T) {
	dir, err := ioutil.TempDir("", "nasl")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	if err = ioutil.WriteFile(filepath.Join(dir, "a.inc"), []byte("a = 1;"), 0644); err != nil {
		t.Fatal(err)
	}
	l := FSLoader{Root: dir}
	if code, err := l.Load("a.inc"); err != nil || code != "a = 1;" {
		t.Errorf("expected to load a.inc, got %q, %v", code, err)
	}
	var loadErr *LoadError
	if _, err = l.Load("../a.inc/../missing.inc"); !errors.As(err, &loadErr) || loadErr.Kind != NotFound {
		t.Errorf("expected not found, got %v", err)
	}
	m := MapLoader{"x": "y"}
	if code, _ := m.Load("x"); code != "y" {
		t.Errorf("expected y, got %q", code)
	}
	if _, err = (NoOpLoader{}).Load("x"); !errors.As(err, &loadErr) {
		t.Errorf("expected load error, got %v", err)
	}
}
