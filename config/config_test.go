package config

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.cli")
	defer teardown()
	//
	c, err := Parse([]byte(`
target: 192.168.0.7
resolve_timeout: 500ms
parameters:
  - id: timeout
    value: "5"
  - id: timeout
    value: "6"
`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Target != "192.168.0.7" {
		t.Errorf("expected target, got %q", c.Target)
	}
	if c.ResolveTimeout != 500*time.Millisecond {
		t.Errorf("expected timeout of 500ms, got %v", c.ResolveTimeout)
	}
	if c.IncludePath != "." || c.Trace != "Error" {
		t.Errorf("expected defaults for missing settings, got %+v", c)
	}
	if prefs := c.Preferences(); len(prefs) != 1 || prefs["timeout"] != "6" {
		t.Errorf("expected later parameter to win, got %v", prefs)
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.cli")
	defer teardown()
	//
	for _, input := range []string{
		"target: [",
		"parameters:\n  - value: x\n",
		"resolve_timeout: 0s\n",
	} {
		if _, err := Parse([]byte(input)); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nasl.cli")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "nasl.yaml")
	if err := ioutil.WriteFile(path, []byte("include_path: /tmp/scripts\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.IncludePath != "/tmp/scripts" {
		t.Errorf("expected include path from file, got %q", c.IncludePath)
	}
	if _, err = Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestScannerParameterJSON(t *testing.T) {
	data, err := json.Marshal(ScannerParameter{ID: "timeout", Value: "5"})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"id":"timeout","value":"5"}` {
		t.Errorf("unexpected JSON %s", data)
	}
}
