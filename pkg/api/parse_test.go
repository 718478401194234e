package api

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadRunFile_Valid(t *testing.T) {
	content := `
steps:
  - name: greet
    operation: render
    args: ["hello {{ .name | upper }}"]
  - name: named
    operation: require
    args: [name]
inputs: inputs.yaml
trace: /tmp/trace.yaml
only: "gr*"
`
	dir := t.TempDir()
	f := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(f, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	rf, err := LoadRunFile(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rf.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(rf.Steps))
	}
	if rf.Dir != dir {
		t.Fatalf("expected Dir=%q, got %q", dir, rf.Dir)
	}
	if rf.Inputs != filepath.Join(dir, "inputs.yaml") {
		t.Errorf("expected inputs resolved against run file dir, got %q", rf.Inputs)
	}
	if rf.Trace != "/tmp/trace.yaml" {
		t.Errorf("expected absolute trace path kept, got %q", rf.Trace)
	}
	if rf.Steps[0].Args[0] != "hello {{ .name | upper }}" {
		t.Errorf("unexpected args %v", rf.Steps[0].Args)
	}
}

func TestLoadRunFile_FileNotFound(t *testing.T) {
	_, err := LoadRunFile("/nonexistent/run.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "reading run file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRunFile_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(f, []byte("{{invalid"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadRunFile(f)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "parsing run file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRunFile_ValidationFails(t *testing.T) {
	content := `
steps:
  - name: ""
    operation: render
`
	dir := t.TempDir()
	f := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(f, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadRunFile(f)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "validating run file") {
		t.Fatalf("unexpected error: %v", err)
	}
}
