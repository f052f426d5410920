package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigFileUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".airframedesk", "templates.json")
	if got := DefaultTemplatePath(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if got := DefaultConfigPath(); filepath.Dir(got) != filepath.Dir(want) {
		t.Errorf("config and templates should share a directory, got %s", got)
	}
	if got := DefaultSessionPath(); filepath.Dir(got) != filepath.Dir(want) {
		t.Errorf("session and templates should share a directory, got %s", got)
	}
}

func TestReadJSONMissingFile(t *testing.T) {
	v := map[string]int{"kept": 1}
	found, err := readJSON(filepath.Join(t.TempDir(), "missing.json"), &v)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found {
		t.Error("expected found to be false")
	}
	if v["kept"] != 1 {
		t.Error("target should be untouched")
	}
}

func TestWriteJSONCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "data.json")
	if err := writeJSON(path, map[string]string{"k": "v"}); err != nil {
		t.Fatalf("writeJSON failed: %v", err)
	}
	var got map[string]string
	found, err := readJSON(path, &got)
	if err != nil || !found {
		t.Fatalf("readJSON: found=%v err=%v", found, err)
	}
	if got["k"] != "v" {
		t.Errorf("expected v, got %q", got["k"])
	}
}

func TestReadJSONInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	var v map[string]any
	found, err := readJSON(path, &v)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !found {
		t.Error("an unparsable file still exists")
	}
}
