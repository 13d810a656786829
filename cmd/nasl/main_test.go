package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/nasl/config"
	"github.com/npillmayer/nasl/runtime"
	"github.com/npillmayer/nasl/syntax"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLeveledStatement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.cli")
	defer teardown()
	//
	stmt, err := syntax.Parse("a = f(x: 1) + 2;").Next()
	if err != nil {
		t.Fatal(err)
	}
	ll := leveledStatement(stmt)
	expected := []struct {
		level int
		text  string
	}{
		{0, "= (AssignReturn)"},
		{1, "a"},
		{1, "+"},
		{2, "f()"},
		{3, "x:"},
		{4, "1"},
		{2, "2"},
	}
	if len(ll) != len(expected) {
		t.Fatalf("expected %d items, got %v", len(expected), ll)
	}
	for i, e := range expected {
		if ll[i].Level != e.level || ll[i].Text != e.text {
			t.Errorf("item %d: expected %d %q, got %d %q", i, e.level, e.text, ll[i].Level, ll[i].Text)
		}
	}
}

func TestRunStatus(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.cli")
	defer teardown()
	//
	newIntp := func() *Intp {
		return &Intp{reg: runtime.NewRegister(), ctx: runtime.NewContext("")}
	}
	if status := newIntp().Run("a = 1;"); status != 0 {
		t.Errorf("expected status 0, got %d", status)
	}
	intp := newIntp()
	if status := intp.Run("exit(4); a = 1;"); status != 4 || !intp.exited {
		t.Errorf("expected status 4 from exit, got %d", status)
	}
	if status := newIntp().Run("a = 1 / 0;"); status != 1 {
		t.Errorf("expected status 1 after an error, got %d", status)
	}
}

func TestOverrideConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Target = "10.0.0.1"
	overrideConfig(cfg, "Debug", "", "/scripts")
	if cfg.Trace != "Debug" || cfg.Target != "10.0.0.1" || cfg.IncludePath != "/scripts" {
		t.Errorf("unexpected config after override: %+v", cfg)
	}
}

func TestListFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.cli")
	defer teardown()
	//
	var out bytes.Buffer
	listFunctions(&out)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected one line per table, got %q", out.String())
	}
	if !strings.HasPrefix(lines[0], "host:") || !strings.Contains(lines[0], "get_host_name") {
		t.Errorf("expected host functions first, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "string:") || !strings.Contains(lines[2], " hex ") {
		t.Errorf("expected string functions last, got %q", lines[2])
	}
}
